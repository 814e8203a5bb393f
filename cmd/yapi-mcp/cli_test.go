package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBinary builds the yapi-mcp binary for testing.
// Returns the path to the binary.
func buildBinary(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "yapi-mcp")
	cmd := exec.Command("go", "build", "-o", binary, ".")
	cmd.Dir = filepath.Join(getModuleRoot(t), "cmd", "yapi-mcp")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return binary
}

// getModuleRoot returns the root of the Go module.
func getModuleRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find module root")
		}
		dir = parent
	}
}

// fakeRegistryServer starts an httptest YAPI registry for CLI tests.
func fakeRegistryServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/interface/list":
			w.Write([]byte(`{"data": {"list": [{"_id": 7, "title": "Login", "path": "/login", "method": "POST"}]}}`))
		case "/api/interface/get":
			w.Write([]byte(`{"data": {"_id": 42, "title": "Login", "path": "/login", "method": "POST"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, binary string, env []string, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(binary, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestCLI_ListJSON(t *testing.T) {
	binary := buildBinary(t)
	registry := fakeRegistryServer(t)

	out, err := runCLI(t, binary,
		[]string{"YAPI_BASE_URL=" + registry.URL, "YAPI_TOKEN=tok-abc"},
		"list", "--project", "88", "--json")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}

	var interfaces []map[string]any
	if err := json.Unmarshal([]byte(out), &interfaces); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(interfaces) != 1 || interfaces[0]["name"] != "Login" {
		t.Errorf("unexpected interfaces: %+v", interfaces)
	}
}

func TestCLI_Get(t *testing.T) {
	binary := buildBinary(t)
	registry := fakeRegistryServer(t)

	out, err := runCLI(t, binary,
		[]string{"YAPI_BASE_URL=" + registry.URL, "YAPI_TOKEN=tok-abc"},
		"get", "--id", "42")
	if err != nil {
		t.Fatalf("get failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"title": "Login"`) {
		t.Errorf("expected interface detail, got:\n%s", out)
	}
}

func TestCLI_MissingToken(t *testing.T) {
	binary := buildBinary(t)
	registry := fakeRegistryServer(t)

	tmpHome := t.TempDir()
	out, err := runCLI(t, binary,
		[]string{"YAPI_BASE_URL=" + registry.URL, "YAPI_TOKEN=", "HOME=" + tmpHome},
		"list", "--project", "88")
	if err == nil {
		t.Fatalf("expected failure without token, got:\n%s", out)
	}
	if !strings.Contains(out, "token not set") {
		t.Errorf("expected actionable token error, got:\n%s", out)
	}
}
