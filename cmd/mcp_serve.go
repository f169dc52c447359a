package cmd

import (
	"fmt"
	"os"

	"github.com/DanOgh07/quantumin-solver/internal/mcp"

	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Start an MCP server exposing the solver",
	Long: `Start a Model Context Protocol (MCP) server over stdio. AI agents
can call the solver, classifier and solution history as tools.`,
	Example: `  # Start MCP server (for use with an MCP-compatible agent)
  quantumin mcp-serve

  # Test manually (sends JSON-RPC via stdin)
  echo '{"jsonrpc":"2.0","method":"tools/list","id":1}' | quantumin mcp-serve`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := mcp.Serve(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}
