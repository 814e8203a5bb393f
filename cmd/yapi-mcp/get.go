package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yapihq/yapi-mcp/internal/yapi"
)

var (
	getID      int64
	getBaseURL string
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print one interface definition",
	Long: `Print the full definition of a single YAPI interface as JSON.

Examples:
  yapi-mcp get --id 42`,
	RunE: runGet,
}

func init() {
	getCmd.Flags().Int64VarP(&getID, "id", "i", 0, "YAPI interface ID (required)")
	getCmd.Flags().StringVar(&getBaseURL, "base-url", "", "YAPI base URL (overrides YAPI_BASE_URL)")
	_ = getCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(getBaseURL)
	if err != nil {
		return err
	}

	client := yapi.NewClient(cfg.BaseURL, cfg.Token)
	detail, err := client.GetInterface(cmd.Context(), getID)
	if err != nil {
		return fmt.Errorf("get interface: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, detail, "", "  "); err != nil {
		return fmt.Errorf("format interface: %w", err)
	}
	fmt.Println(buf.String())
	return nil
}
