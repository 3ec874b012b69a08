package integration_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/html"

	"github.com/fluentdom-go/fluentdom/internal/config"
	"github.com/fluentdom-go/fluentdom/internal/dev"
	"github.com/fluentdom-go/fluentdom/internal/gallery"
	"github.com/fluentdom-go/fluentdom/pkg/snapshot"
)

func newGalleryServer(t *testing.T) *dev.Server {
	t.Helper()
	srv, err := dev.NewServer(dev.Options{Config: config.New()})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func TestChiRouterIntegration(t *testing.T) {
	srv := newGalleryServer(t)

	// Host application router with its own routes plus the gallery mounted
	// at the root.
	r := chi.NewRouter()
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/*", srv.Handler())

	t.Run("API health endpoint", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		if rec.Body.String() != "OK" {
			t.Errorf("expected OK, got %s", rec.Body.String())
		}
	})

	t.Run("gallery index through mount", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.HasPrefix(body, "<!DOCTYPE html>") {
			t.Errorf("expected doctype, got %.40q", body)
		}
		if !strings.Contains(body, "fluentdom gallery") {
			t.Error("expected gallery header in index page")
		}
	})

	t.Run("demo page through mount", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/demo/hello", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "demo-hello") {
			t.Error("expected demo-hello content")
		}
	})

	t.Run("middleware chain executes", func(t *testing.T) {
		middlewareExecuted := false

		trackingRouter := chi.NewRouter()
		trackingRouter.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				middlewareExecuted = true
				next.ServeHTTP(w, r)
			})
		})
		trackingRouter.Handle("/*", srv.Handler())

		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()
		trackingRouter.ServeHTTP(rec, req)

		if !middlewareExecuted {
			t.Error("expected middleware to execute before gallery handler")
		}
		if rec.Body.String() != "ok" {
			t.Errorf("expected ok, got %s", rec.Body.String())
		}
	})
}

func TestServerHandler(t *testing.T) {
	srv := newGalleryServer(t)

	t.Run("Handler returns http.Handler", func(t *testing.T) {
		if srv.Handler() == nil {
			t.Error("expected non-nil handler")
		}
	})

	t.Run("unknown demo is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/demo/nope", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

// TestStdlibMuxIntegration tests with stdlib ServeMux.
func TestStdlibMuxIntegration(t *testing.T) {
	srv := newGalleryServer(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("api"))
	})
	mux.Handle("/", srv.Handler())

	t.Run("API route works", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/test", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Body.String() != "api" {
			t.Errorf("expected api, got %s", rec.Body.String())
		}
	})

	t.Run("gallery handler mounted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/demo/cards", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "demo-cards") {
			t.Error("expected demo-cards content")
		}
	})
}

// TestSnapshotPipeline renders the gallery, writes it through a DirStore,
// and checks the manifest against the files on disk.
func TestSnapshotPipeline(t *testing.T) {
	index, err := gallery.RenderIndex()
	if err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	pages := []snapshot.Page{{Name: "index.html", Data: []byte(index)}}

	for _, d := range gallery.Demos() {
		markup, err := gallery.RenderPage(d)
		if err != nil {
			t.Fatalf("RenderPage(%s): %v", d.Name, err)
		}
		pages = append(pages, snapshot.Page{
			Name: "demo/" + d.Name + ".html",
			Data: []byte(markup),
		})
	}

	dir := t.TempDir()
	manifest, err := snapshot.Run(context.Background(), snapshot.NewDirStore(dir), pages)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	t.Run("manifest matches files", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, snapshot.ManifestName))
		if err != nil {
			t.Fatalf("reading manifest: %v", err)
		}
		var m snapshot.Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("decoding manifest: %v", err)
		}
		if m.ID != manifest.ID {
			t.Errorf("manifest ID = %s, want %s", m.ID, manifest.ID)
		}
		if len(m.Pages) != len(pages) {
			t.Fatalf("manifest has %d pages, want %d", len(m.Pages), len(pages))
		}

		for _, p := range m.Pages {
			body, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p.Name)))
			if err != nil {
				t.Fatalf("reading %s: %v", p.Name, err)
			}
			if int64(len(body)) != p.Size {
				t.Errorf("%s size = %d, want %d", p.Name, len(body), p.Size)
			}
			sum := sha256.Sum256(body)
			if got := hex.EncodeToString(sum[:]); got != p.SHA256 {
				t.Errorf("%s digest = %s, want %s", p.Name, got, p.SHA256)
			}
		}
	})

	t.Run("index parses and links every demo", func(t *testing.T) {
		body, err := os.ReadFile(filepath.Join(dir, "index.html"))
		if err != nil {
			t.Fatalf("reading index: %v", err)
		}
		doc, err := html.Parse(bytes.NewReader(body))
		if err != nil {
			t.Fatalf("parsing index: %v", err)
		}

		links := map[string]bool{}
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == "a" {
				for _, a := range n.Attr {
					if strings.HasPrefix(a.Val, "/demo/") && a.Key == "href" {
						links[strings.TrimPrefix(a.Val, "/demo/")] = true
					}
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(doc)

		for _, d := range gallery.Demos() {
			if !links[d.Name] {
				t.Errorf("index is missing a link to %s", d.Name)
			}
		}
	})
}
