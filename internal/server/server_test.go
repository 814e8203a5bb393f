package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yapihq/yapi-mcp/internal/config"
)

// fakeRegistry is a minimal YAPI registry: one canned body per path,
// with a request counter.
type fakeRegistry struct {
	server   *httptest.Server
	bodies   map[string]string
	requests int
}

func newFakeRegistry(t *testing.T, bodies map[string]string) *fakeRegistry {
	t.Helper()

	f := &fakeRegistry{bodies: bodies}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		body, ok := f.bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func newTestServer(t *testing.T, reg *fakeRegistry) *Server {
	t.Helper()

	srv, err := New(Options{
		Config: &config.Config{BaseURL: reg.server.URL, Token: "tok-abc"},
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return srv
}

func TestNew_MissingToken(t *testing.T) {
	_, err := New(Options{
		Config: &config.Config{BaseURL: "http://yapi.internal"},
		Logger: log.New(io.Discard, "", 0),
	})
	if !errors.Is(err, config.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestUnknownTool_NoRegistryCall(t *testing.T) {
	reg := newFakeRegistry(t, map[string]string{
		"/api/interface/list": `{"data": {"list": []}}`,
	})
	srv := newTestServer(t, reg)

	resp := srv.mcp.HandleMessage(context.Background(), []byte(`{
		"jsonrpc": "2.0",
		"id": 1,
		"method": "tools/call",
		"params": {"name": "no_such_tool", "arguments": {}}
	}`))
	if resp == nil {
		t.Fatal("expected a response message")
	}
	if reg.requests != 0 {
		t.Errorf("expected no registry call for unknown tool, got %d", reg.requests)
	}
}
