package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// interfacesResourceURI addresses the single static resource: the full
// interface list from the registry.
const interfacesResourceURI = "yapi://interfaces"

// ErrUnknownResource is returned for resource URIs the adapter does
// not serve. A caller hitting it has a programming error; the request
// is not retried here.
var ErrUnknownResource = errors.New("unknown resource")

func (s *Server) registerResources() {
	interfaces := mcp.NewResource(
		interfacesResourceURI,
		"YAPI Interfaces",
		mcp.WithResourceDescription("The full interface list from the YAPI registry"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcp.AddResource(interfaces, s.handleInterfacesResource)
}

func (s *Server) handleInterfacesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if request.Params.URI != interfacesResourceURI {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, request.Params.URI)
	}

	raw, err := s.registry.ListRaw(ctx)
	if err != nil {
		s.logger.Printf("read %s: %v", interfacesResourceURI, err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("format interface list: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     buf.String(),
		},
	}, nil
}
