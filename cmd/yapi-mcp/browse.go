package main

import (
	"github.com/spf13/cobra"

	"github.com/yapihq/yapi-mcp/internal/tui"
	"github.com/yapihq/yapi-mcp/internal/yapi"
)

var (
	browseProjectID int64
	browseBaseURL   string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a project's interfaces interactively",
	Long: `Open an interactive browser over a project's interfaces.

Enter shows the full interface definition, / filters the list, q quits.

Examples:
  yapi-mcp browse --project 88`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().Int64VarP(&browseProjectID, "project", "p", 0, "YAPI project ID (required)")
	browseCmd.Flags().StringVar(&browseBaseURL, "base-url", "", "YAPI base URL (overrides YAPI_BASE_URL)")
	_ = browseCmd.MarkFlagRequired("project")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(browseBaseURL)
	if err != nil {
		return err
	}

	client := yapi.NewClient(cfg.BaseURL, cfg.Token)
	return tui.Browse(client, browseProjectID)
}
