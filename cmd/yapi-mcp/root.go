package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "yapi-mcp",
	Short: "MCP server for the YAPI interface registry",
	Long: `yapi-mcp exposes a YAPI interface-documentation registry over the
Model Context Protocol.

Run 'yapi-mcp serve' as an MCP server (spawned by Claude Code or other
MCP clients), or query the registry directly with 'list', 'get' and
'browse'.

Configuration comes from the YAPI_BASE_URL and YAPI_TOKEN environment
variables; the token may also be stored in the OS keychain via
'yapi-mcp auth set-token'.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
}

func init() {
	// Disable automatic completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Suppress errors from being printed twice
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
