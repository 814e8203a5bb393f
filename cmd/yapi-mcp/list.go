package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yapihq/yapi-mcp/internal/yapi"
)

var (
	listProjectID int64
	listJSON      bool
	listBaseURL   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the interfaces of a YAPI project",
	Long: `List the interfaces of a YAPI project.

By default, outputs a human-readable table. Use --json for machine-readable output.

Examples:
  yapi-mcp list --project 88
  yapi-mcp list --project 88 --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().Int64VarP(&listProjectID, "project", "p", 0, "YAPI project ID (required)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVar(&listBaseURL, "base-url", "", "YAPI base URL (overrides YAPI_BASE_URL)")
	_ = listCmd.MarkFlagRequired("project")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(listBaseURL)
	if err != nil {
		return err
	}

	client := yapi.NewClient(cfg.BaseURL, cfg.Token)
	interfaces, err := client.ListInterfaces(cmd.Context(), listProjectID)
	if err != nil {
		return fmt.Errorf("list interfaces: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(interfaces, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal interfaces: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tPATH\tNAME")
	for _, iface := range interfaces {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", iface.ID, iface.Method, iface.Path, iface.Name)
	}
	return w.Flush()
}
