package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names exposed to MCP clients.
const (
	toolGetInterfaces      = "get_interfaces"
	toolGetInterfaceDetail = "get_interface_detail"
)

// registerTools declares the two registry tools. The descriptor set is
// fixed at startup; mcp-go rejects calls to any other tool name before
// a handler (or the registry) is ever reached.
func (s *Server) registerTools() {
	listTool := mcp.NewTool(toolGetInterfaces,
		mcp.WithDescription("List the interfaces of a YAPI project, with id, name, path and method for each"),
		mcp.WithNumber("project_id",
			mcp.Required(),
			mcp.Description("Numeric YAPI project ID"),
		),
	)
	s.mcp.AddTool(listTool, s.handleGetInterfaces)

	detailTool := mcp.NewTool(toolGetInterfaceDetail,
		mcp.WithDescription("Fetch the full definition of a single YAPI interface"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Numeric YAPI interface ID"),
		),
	)
	s.mcp.AddTool(detailTool, s.handleGetInterfaceDetail)
}

func (s *Server) handleGetInterfaces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := request.RequireInt("project_id")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Missing 'project_id' parameter: %v", err)), nil
	}

	interfaces, err := s.registry.ListInterfaces(ctx, int64(projectID))
	if err != nil {
		s.logger.Printf("get_interfaces project_id=%d: %v", projectID, err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := json.MarshalIndent(interfaces, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal interfaces: %v", err)), nil
	}
	return mcp.NewToolResultText(string(text)), nil
}

func (s *Server) handleGetInterfaceDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Missing 'id' parameter: %v", err)), nil
	}

	detail, err := s.registry.GetInterface(ctx, int64(id))
	if err != nil {
		s.logger.Printf("get_interface_detail id=%d: %v", id, err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, detail, "", "  "); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("format interface detail: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
