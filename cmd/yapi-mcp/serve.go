package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yapihq/yapi-mcp/internal/config"
	"github.com/yapihq/yapi-mcp/internal/server"
)

var (
	serveHTTPAddr string
	serveBaseURL  string
	serveLogLevel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an MCP server",
	Long: `Run yapi-mcp as an MCP server translating tool calls and resource
reads into YAPI registry requests.

This mode is intended to be spawned by Claude Code or other MCP clients.
Configure in Claude Code's mcp_servers.json:

  {
    "yapi": {
      "command": "yapi-mcp",
      "args": ["serve", "--stdio"],
      "env": {"YAPI_BASE_URL": "http://yapi.internal:3000", "YAPI_TOKEN": "..."}
    }
  }

Tools: get_interfaces (by project_id), get_interface_detail (by id).
Resources: yapi://interfaces (the full interface list).`,
	RunE: runServe,
}

func init() {
	// --stdio is a no-op flag for compatibility (stdio is the default transport)
	serveCmd.Flags().Bool("stdio", false, "Use stdio transport (default)")
	_ = serveCmd.Flags().MarkHidden("stdio")

	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "Serve streamable HTTP on this address instead of stdio (e.g. :8700)")
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "YAPI base URL (overrides YAPI_BASE_URL)")
	serveCmd.Flags().StringVarP(&serveLogLevel, "log-level", "l", "info", "Log level (debug, info, error, off)")

	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the diagnostic logger. In stdio mode stdout carries
// the MCP protocol, so all of this goes to stderr.
func newLogger(level string) *log.Logger {
	switch level {
	case "debug":
		return log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	case "info", "error":
		return log.New(os.Stderr, "", log.LstdFlags)
	default:
		return log.New(io.Discard, "", 0)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(serveLogLevel)

	cfg, err := loadConfig(serveBaseURL)
	if err != nil {
		return err
	}

	logger.Printf("yapi-mcp serve starting (version=%s)", version)

	srv, err := server.New(server.Options{
		Config:        cfg,
		Logger:        logger,
		ServerName:    "yapi-mcp",
		ServerVersion: version,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("received signal %v, shutting down", sig)
		cancel()
	}()

	if serveHTTPAddr != "" {
		err = srv.RunHTTP(ctx, serveHTTPAddr)
	} else {
		err = srv.Run(ctx)
	}
	if err != nil && err != context.Canceled {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Println("yapi-mcp serve exiting")
	return nil
}

// loadConfig resolves the adapter configuration, applying the given
// base URL override and validating the mandatory token.
func loadConfig(baseURLOverride string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if baseURLOverride != "" {
		cfg.BaseURL = baseURLOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
