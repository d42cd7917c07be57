package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nagrikmitra/mitra/auth"
	"github.com/nagrikmitra/mitra/refdata"
	"github.com/nagrikmitra/mitra/registry"
)

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	services := `[
		{"name":"Passport","procedure":["Fill form","Submit docs"],"official_link":"https://x"},
		{"name":"PAN Card","procedure":["Apply online"]}
	]`
	schemes := `[
		{"name":"PM-KISAN","category":"Agriculture","description":"Income support for farmer families"},
		{"name":"Atal Pension Yojana","category":"Social Security","description":"Guaranteed pension"}
	]`

	if err := os.WriteFile(filepath.Join(dir, refdata.ServicesFile), []byte(services), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, refdata.SchemesFile), []byte(schemes), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	if opts.DataDir == "" {
		opts.DataDir = writeDataDir(t)
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.NewRegistry()
	}
	svc, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return svc
}

func callTool(t *testing.T, svc *Service, name string, args map[string]any) string {
	t.Helper()
	params, _ := json.Marshal(map[string]any{"name": name, "arguments": args})
	resp := svc.Registry().HandleRequest(context.Background(), registry.MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp.Error != nil {
		t.Fatalf("tools/call %s failed: %+v", name, resp.Error)
	}
	result := resp.Result.(map[string]any)
	content := result["content"].([]map[string]any)
	text, _ := content[0]["text"].(string)
	return text
}

func TestServiceRegistersAllTools(t *testing.T) {
	svc := newTestService(t, Options{Identity: "919999999999"})

	tools := svc.Registry().Tools()
	if len(tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(tools))
	}
	for i, want := range []string{"seva", "yojana", "validate"} {
		if tools[i].Name != want {
			t.Errorf("tools[%d] = %s, want %s", i, tools[i].Name, want)
		}
	}
}

func TestServiceSevaTool(t *testing.T) {
	svc := newTestService(t, Options{})

	got := callTool(t, svc, "seva", map[string]any{"service_name": "passport"})
	if !strings.Contains(got, "📜 *Guide for Passport*") {
		t.Errorf("unexpected seva answer:\n%s", got)
	}
	if !strings.Contains(got, "1. Fill form") || !strings.Contains(got, "2. Submit docs") {
		t.Errorf("expected numbered steps:\n%s", got)
	}

	got = callTool(t, svc, "seva", map[string]any{})
	if !strings.HasPrefix(got, "❌") {
		t.Errorf("expected a formatted error for missing argument, got: %s", got)
	}
}

func TestServiceYojanaTool(t *testing.T) {
	svc := newTestService(t, Options{})

	got := callTool(t, svc, "yojana", map[string]any{})
	if !strings.Contains(got, "🌟 *Available Scheme Categories:*") {
		t.Errorf("expected category listing:\n%s", got)
	}

	got = callTool(t, svc, "yojana", map[string]any{"query": "farmer"})
	if !strings.Contains(got, "PM-KISAN") {
		t.Errorf("expected PM-KISAN match:\n%s", got)
	}
}

func TestServiceValidateTool(t *testing.T) {
	svc := newTestService(t, Options{Identity: "919999999999"})

	if got := callTool(t, svc, "validate", map[string]any{}); got != "919999999999" {
		t.Errorf("expected configured identity, got %q", got)
	}
}

func TestServiceMissingDataDir(t *testing.T) {
	svc := newTestService(t, Options{
		DataDir:    t.TempDir(),
		Registerer: prometheus.NewRegistry(),
	})

	got := callTool(t, svc, "seva", map[string]any{"service_name": "Passport"})
	if !strings.HasPrefix(got, "❌") {
		t.Errorf("expected no-data message, got: %s", got)
	}
	got = callTool(t, svc, "yojana", map[string]any{"query": "pension"})
	if !strings.HasPrefix(got, "❌") {
		t.Errorf("expected no-data message, got: %s", got)
	}
}

func TestServiceHandlerWithAuth(t *testing.T) {
	svc := newTestService(t, Options{
		Verifier: auth.NewStaticVerifier("secret-token", "puch-client"),
	})
	handler := svc.Handler()

	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`

	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without credential, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer secret-token")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with credential, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"yojana"`) {
		t.Errorf("expected tool listing, got: %s", w.Body.String())
	}
}

func TestServiceStats(t *testing.T) {
	svc := newTestService(t, Options{})

	stats := svc.Stats()
	if stats.Services != 2 || stats.Schemes != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
