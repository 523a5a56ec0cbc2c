// Package toolexec runs external tools (oxlint, npx) as subprocesses.
package toolexec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Output is the raw output from a tool execution.
type Output struct {
	// Stdout is the standard output.
	Stdout string

	// Stderr is the error output.
	Stderr string

	// ExitCode is the process exit code.
	ExitCode int

	// Duration is how long the tool took to run.
	Duration string
}

// Executor runs external tools as subprocesses.
type Executor struct {
	// Timeout is the max execution time.
	// Default: 2 minutes
	Timeout time.Duration

	// WorkDir is the working directory.
	WorkDir string

	// Env is additional environment variables.
	Env map[string]string
}

// NewExecutor creates a new executor.
func NewExecutor() *Executor {
	return &Executor{
		Timeout: 2 * time.Minute,
		Env:     make(map[string]string),
	}
}

// Execute runs a command and returns its output.
func (e *Executor) Execute(ctx context.Context, name string, args ...string) (*Output, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	if e.WorkDir != "" {
		cmd.Dir = e.WorkDir
	}

	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.envSlice()...)
	}

	start := time.Now()
	stdout, err := cmd.Output()
	duration := time.Since(start)

	output := &Output{
		Stdout:   string(stdout),
		Duration: duration.String(),
	}

	if err != nil {
		// Non-zero exit still carries usable output
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.Stderr = string(exitErr.Stderr)
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return nil, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	output.ExitCode = 0
	return output, nil
}

func (e *Executor) envSlice() []string {
	result := make([]string, 0, len(e.Env))
	for k, v := range e.Env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// FindTool locates a tool binary, checking the local path first, then
// the global PATH. Returns empty string if not found.
func FindTool(localPath, globalName string) string {
	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}
	if path, err := exec.LookPath(globalName); err == nil {
		return path
	}
	return ""
}

// LocalBin returns the conventional npm local install path for a tool
// relative to a project directory (node_modules/.bin/<name>).
func LocalBin(projectDir, name string) string {
	return filepath.Join(projectDir, "node_modules", ".bin", name)
}
