package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func readResourceRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestInterfacesResource_ReturnsDataPrettyPrinted(t *testing.T) {
	reg := newFakeRegistry(t, map[string]string{
		"/api/interface/list": `{"errcode": 0, "data": {"count": 1, "list": [{"_id": 7, "title": "Login"}]}}`,
	})
	srv := newTestServer(t, reg)

	contents, err := srv.handleInterfacesResource(context.Background(), readResourceRequest(interfacesResourceURI))
	if err != nil {
		t.Fatalf("resource read failed: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected one content item, got %d", len(contents))
	}

	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected text resource contents, got %T", contents[0])
	}
	if tc.URI != interfacesResourceURI {
		t.Errorf("expected URI %q, got %q", interfacesResourceURI, tc.URI)
	}
	if tc.MIMEType != "application/json" {
		t.Errorf("expected application/json, got %q", tc.MIMEType)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(tc.Text), &got); err != nil {
		t.Fatalf("resource text is not valid JSON: %v", err)
	}
	if got["count"] != float64(1) {
		t.Errorf("expected upstream data member, got %+v", got)
	}
	if reg.requests != 1 {
		t.Errorf("expected exactly one registry call, got %d", reg.requests)
	}
}

func TestInterfacesResource_UnknownURI(t *testing.T) {
	reg := newFakeRegistry(t, map[string]string{
		"/api/interface/list": `{"data": {}}`,
	})
	srv := newTestServer(t, reg)

	_, err := srv.handleInterfacesResource(context.Background(), readResourceRequest("yapi://projects"))
	if !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	if reg.requests != 0 {
		t.Errorf("expected no registry call for unknown URI, got %d", reg.requests)
	}
}
