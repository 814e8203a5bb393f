// Package server implements the MCP server that fronts the YAPI
// registry: two tools and one resource, each translating into a single
// registry HTTP call.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/yapihq/yapi-mcp/internal/config"
	"github.com/yapihq/yapi-mcp/internal/yapi"
)

// Options configures the MCP server.
type Options struct {
	Config        *config.Config
	Stdin         io.Reader
	Stdout        io.Writer
	Logger        *log.Logger // diagnostics; defaults to stderr
	HTTPClient    *http.Client
	ServerName    string
	ServerVersion string
}

// Server is an MCP server exposing the YAPI registry as tools and
// resources. All state is fixed at construction; handlers never mutate
// it.
type Server struct {
	opts     Options
	logger   *log.Logger
	registry *yapi.Client
	mcp      *mcpserver.MCPServer
}

// New creates the server. It fails if the configuration is missing the
// mandatory registry token, so a misconfigured adapter never reaches a
// ready state.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: Config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if opts.ServerName == "" {
		opts.ServerName = "yapi-mcp"
	}
	if opts.ServerVersion == "" {
		opts.ServerVersion = "dev"
	}

	clientOpts := []yapi.Option{yapi.WithLogger(opts.Logger)}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, yapi.WithHTTPClient(opts.HTTPClient))
	}

	s := &Server{
		opts:     opts,
		logger:   opts.Logger,
		registry: yapi.NewClient(opts.Config.BaseURL, opts.Config.Token, clientOpts...),
		mcp: mcpserver.NewMCPServer(
			opts.ServerName,
			opts.ServerVersion,
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithResourceCapabilities(false, false),
			mcpserver.WithRecovery(),
		),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio until ctx is canceled. Stdout carries only
// protocol frames; diagnostics go to the logger.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Printf("serving MCP over stdio (registry=%s)", s.opts.Config.BaseURL)

	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger)

	if err := stdio.Listen(ctx, s.opts.Stdin, s.opts.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is
// canceled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	s.logger.Printf("serving MCP over streamable HTTP on %s (registry=%s)", addr, s.opts.Config.BaseURL)

	hs := mcpserver.NewStreamableHTTPServer(s.mcp)

	errCh := make(chan error, 1)
	go func() {
		errCh <- hs.Start(addr)
	}()

	select {
	case <-ctx.Done():
		if err := hs.Shutdown(context.Background()); err != nil {
			s.logger.Printf("http shutdown: %v", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}
