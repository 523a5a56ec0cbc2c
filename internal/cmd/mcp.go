package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oxmigrate/oxmigrate-cli/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing the analyzer over stdio",
	Long: `Starts a Model Context Protocol server on stdio. Coding agents can
call the analyze_directory and generate_report tools to inspect which
ESLint rules a project's oxlint setup already covers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.NewServer(version).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
