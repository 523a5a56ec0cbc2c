// Package mcp exposes the analyzer over the Model Context Protocol so
// coding agents can query migration state directly.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oxmigrate/oxmigrate-cli/internal/analyze"
	"github.com/oxmigrate/oxmigrate-cli/internal/report"
)

// Server is an MCP (Model Context Protocol) server. It communicates
// via JSON-RPC over stdio.
type Server struct {
	version string
}

// NewServer creates a new MCP server instance.
func NewServer(version string) *Server {
	return &Server{version: version}
}

// AnalyzeInput is the input schema for the analyze_directory tool.
type AnalyzeInput struct {
	Path      string `json:"path,omitempty" jsonschema:"Directory to analyze (optional, defaults to the current directory)"`
	TypeAware bool   `json:"type_aware,omitempty" jsonschema:"Include rules that need cross-file type information"`
}

// ReportInput is the input schema for the generate_report tool.
type ReportInput struct {
	Path      string `json:"path,omitempty" jsonschema:"Directory to analyze (optional, defaults to the current directory)"`
	TypeAware bool   `json:"type_aware,omitempty" jsonschema:"Include rules that need cross-file type information"`
}

// Run serves MCP over stdio until the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "oxmigrate",
		Version: s.version,
	}, nil)

	// Tool: analyze_directory
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "analyze_directory",
		Description: "Analyze a project's ESLint and oxlint configs and return the raw classification result as JSON: removable rules, inherited rules to disable, redundant overrides, unsupported rules, and disable-able plugins per config file.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input AnalyzeInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		res, err := s.analyze(ctx, input.Path, input.TypeAware)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		data, err := json.Marshal(res)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, fmt.Errorf("failed to encode result: %w", err)
		}
		return nil, textResult(string(data)), nil
	})

	// Tool: generate_report
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_report",
		Description: "Analyze a project and return the human-readable migration report listing which ESLint rules and plugins oxlint makes redundant.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ReportInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		res, err := s.analyze(ctx, input.Path, input.TypeAware)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, textResult(report.Generate(res)), nil
	})

	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) analyze(ctx context.Context, path string, typeAware bool) (*analyze.Result, error) {
	if path == "" {
		path = "."
	}
	return analyze.Directory(ctx, path, analyze.Options{TypeAware: typeAware})
}

// textResult wraps text in the MCP content shape.
func textResult(text string) map[string]any {
	return map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
}
