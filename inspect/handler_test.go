package inspect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jkorab/camel/runtime"
)

func newTestServer(t *testing.T) (*httptest.Server, *runtime.Context) {
	t.Helper()
	cx := runtime.NewContext("camel")
	if _, err := cx.GetEndpoint("timer:foo?delay=500"); err != nil {
		t.Fatalf("GetEndpoint: %v", err)
	}

	reg := runtime.NewRegistry()
	reg.Add(cx)

	srv := httptest.NewServer(Handler(reg))
	t.Cleanup(srv.Close)
	return srv, cx
}

func TestHandlerContexts(t *testing.T) {
	srv, _ := newTestServer(t)

	names, err := NewClient(srv.URL).Contexts()
	if err != nil {
		t.Fatalf("Contexts: %v", err)
	}
	if len(names) != 1 || names[0] != "camel" {
		t.Errorf("unexpected contexts: %v", names)
	}
}

func TestHandlerEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	endpoints, err := NewClient(srv.URL).Endpoints("camel")
	if err != nil {
		t.Fatalf("Endpoints: %v", err)
	}
	if len(endpoints) != 1 {
		t.Fatalf("expected 1 endpoint, got %d", len(endpoints))
	}
	if endpoints[0].URI != "timer:foo?delay=500" {
		t.Errorf("unexpected uri: %q", endpoints[0].URI)
	}
	if endpoints[0].ID == "" {
		t.Error("expected endpoint id")
	}
}

func TestHandlerExplain(t *testing.T) {
	srv, _ := newTestServer(t)

	doc, err := NewClient(srv.URL).ExplainEndpoint("camel", "timer:foo?delay=500", false)
	if err != nil {
		t.Fatalf("ExplainEndpoint: %v", err)
	}
	var parsed struct {
		URI     string `json:"uri"`
		Options []struct {
			Name string `json:"name"`
		} `json:"options"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("decode explanation: %v", err)
	}
	if parsed.URI != "timer:foo?delay=500" {
		t.Errorf("unexpected uri: %q", parsed.URI)
	}
	if len(parsed.Options) == 0 {
		t.Error("expected explained options")
	}
}

func TestHandlerUnknownContextIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/contexts/nope/endpoints")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	// the client surfaces the error message
	_, err = NewClient(srv.URL).Endpoints("nope")
	if err == nil || !strings.Contains(err.Error(), "unknown context") {
		t.Errorf("expected unknown context error, got %v", err)
	}
}

func TestHandlerExplainRequiresURI(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/contexts/camel/explain")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandlerExplainUnknownScheme(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := NewClient(srv.URL).ExplainEndpoint("camel", "bogus:x", false)
	if err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}

func TestClientImplementsController(t *testing.T) {
	var _ runtime.Controller = (*Client)(nil)
}
