package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apidrift/cli/internal/config"
	"github.com/apidrift/cli/internal/routes"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UIDirs = []string{"ui"}
	return cfg
}

func writeFile(t *testing.T, root string, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func mustEndpoint(t *testing.T, method, path string) *routes.Endpoint {
	t.Helper()
	ep, err := routes.NewEndpoint(method, path, 1, "/api")
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	return ep
}

func TestScan_MarksEndpointOnFirstMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/app.js", []byte(`fetch("/api/servers")`))

	ep := mustEndpoint(t, "GET", "/servers")
	sc, err := New(root, testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := sc.Scan(context.Background(), []*routes.Endpoint{ep})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !ep.Used {
		t.Fatalf("endpoint should be marked used")
	}
	if len(ep.Matches) != 1 || ep.Matches[0] != "ui/app.js" {
		t.Fatalf("matches = %v, want [ui/app.js]", ep.Matches)
	}
	if result.FilesScanned != 1 {
		t.Fatalf("files scanned = %d, want 1", result.FilesScanned)
	}
}

func TestScan_ParamEndpointNeedsConcreteSegment(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/app.js", []byte(`fetch("/api/servers")`))

	servers := mustEndpoint(t, "GET", "/servers")
	restart := mustEndpoint(t, "POST", "/servers/:id/restart")
	sc, err := New(root, testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := sc.Scan(context.Background(), []*routes.Endpoint{servers, restart}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !servers.Used {
		t.Fatalf("GET /servers should be used")
	}
	if restart.Used {
		t.Fatalf("restart endpoint should stay unused without a concrete id segment")
	}
}

func TestScan_ShortCircuitRecordsOneMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/a.js", []byte(`"/api/servers"`))
	writeFile(t, root, "ui/b.js", []byte(`"/api/servers"`))

	ep := mustEndpoint(t, "GET", "/servers")
	sc, err := New(root, testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := sc.Scan(context.Background(), []*routes.Endpoint{ep}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(ep.Matches) != 1 {
		t.Fatalf("matches = %v, want exactly one recorded file", ep.Matches)
	}
}

func TestScan_MissingRootIsTolerated(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig()
	cfg.UIDirs = []string{"ui", "webassets"} // neither exists

	ep := mustEndpoint(t, "GET", "/servers")
	sc, err := New(root, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := sc.Scan(context.Background(), []*routes.Endpoint{ep})
	if err != nil {
		t.Fatalf("missing roots must not error: %v", err)
	}
	if result.FilesScanned != 0 {
		t.Fatalf("files scanned = %d, want 0", result.FilesScanned)
	}
	if ep.Used {
		t.Fatalf("endpoint cannot be used with no files scanned")
	}
}

func TestScan_ExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/app.png", []byte(`"/api/servers"`))

	ep := mustEndpoint(t, "GET", "/servers")
	sc, err := New(root, testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := sc.Scan(context.Background(), []*routes.Endpoint{ep})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if result.FilesScanned != 0 {
		t.Fatalf("non-allow-listed extension was opened")
	}
	if ep.Used {
		t.Fatalf("endpoint marked used from a filtered file")
	}
}

func TestScan_ExtensionFilterIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/APP.JS", []byte(`"/api/servers"`))

	ep := mustEndpoint(t, "GET", "/servers")
	sc, err := New(root, testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := sc.Scan(context.Background(), []*routes.Endpoint{ep}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !ep.Used {
		t.Fatalf("uppercase extension should still be scanned")
	}
}

func TestScan_BinaryFileSkipped(t *testing.T) {
	root := t.TempDir()
	content := append([]byte(`"/api/servers"`), 0x00, 0x01, 0x02)
	writeFile(t, root, "ui/blob.js", content)

	ep := mustEndpoint(t, "GET", "/servers")
	sc, err := New(root, testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := sc.Scan(context.Background(), []*routes.Endpoint{ep})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if result.FilesSkipped != 1 {
		t.Fatalf("files skipped = %d, want 1", result.FilesSkipped)
	}
	if ep.Used {
		t.Fatalf("binary file must count as no match")
	}
}

func TestScan_DefaultConfigEnumeratesEveryNestedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/node_modules/app/client.js", []byte(`fetch("/api/servers")`))

	ep := mustEndpoint(t, "GET", "/servers")
	cfg := config.Default()
	sc, err := New(root, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := sc.Scan(context.Background(), []*routes.Endpoint{ep}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !ep.Used {
		t.Fatalf("default configuration must not prune any directory under a UI root")
	}
	if len(ep.Matches) != 1 || ep.Matches[0] != "ui/node_modules/app/client.js" {
		t.Fatalf("matches = %v, want [ui/node_modules/app/client.js]", ep.Matches)
	}
}

func TestScan_ConfiguredExcludesArePruned(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ui/node_modules/lib/index.js", []byte(`"/api/servers"`))

	ep := mustEndpoint(t, "GET", "/servers")
	cfg := testConfig()
	cfg.ExcludeDirs = []string{"node_modules"}
	sc, err := New(root, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := sc.Scan(context.Background(), []*routes.Endpoint{ep}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if ep.Used {
		t.Fatalf("excluded directory was scanned")
	}
}

func TestNew_BadExcludePattern(t *testing.T) {
	cfg := testConfig()
	cfg.ExcludeDirs = []string{"[unterminated"}
	if _, err := New(t.TempDir(), cfg, nil); err == nil {
		t.Fatalf("expected error for invalid exclude pattern")
	}
}
