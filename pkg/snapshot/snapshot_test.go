package snapshot_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fluentdom-go/fluentdom/pkg/snapshot"
)

func TestDirStore_Put(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewDirStore(dir)

	if err := store.Put(context.Background(), "index.html", "text/html", []byte("<p>hi</p>")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("reading stored page: %v", err)
	}
	if string(data) != "<p>hi</p>" {
		t.Errorf("stored content = %q, want %q", data, "<p>hi</p>")
	}
}

func TestDirStore_PutNested(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewDirStore(dir)

	if err := store.Put(context.Background(), "demo/cards.html", "text/html", []byte("x")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "demo", "cards.html")); err != nil {
		t.Errorf("nested page not written: %v", err)
	}
}

func TestDirStore_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewDirStore(dir)
	ctx := context.Background()

	if err := store.Put(ctx, "index.html", "text/html", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "index.html", "text/html", []byte("second")); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "index.html"))
	if string(data) != "second" {
		t.Errorf("content = %q, want the later write", data)
	}
}

func TestDirStore_RejectsEscapingNames(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewDirStore(dir)
	ctx := context.Background()

	for _, name := range []string{"", "/etc/passwd", "../outside.html", "a/../../b"} {
		if err := store.Put(ctx, name, "text/html", []byte("x")); err == nil {
			t.Errorf("Put(%q) should be rejected", name)
		}
	}

	// Nothing may leak above the root.
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "outside.html")); !os.IsNotExist(err) {
		t.Error("a rejected name escaped the store root")
	}
}

// memStore records puts in order and can fail on demand.
type memStore struct {
	objects map[string][]byte
	types   map[string]string
	order   []string
	failOn  string
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (m *memStore) Put(_ context.Context, name, contentType string, data []byte) error {
	if name == m.failOn {
		return errors.New("store full")
	}
	m.objects[name] = append([]byte(nil), data...)
	m.types[name] = contentType
	m.order = append(m.order, name)
	return nil
}

func TestRun(t *testing.T) {
	store := newMemStore()
	pages := []snapshot.Page{
		{Name: "index.html", Data: []byte("<h1>index</h1>")},
		{Name: "demo/hello.html", Data: []byte("<h1>hello</h1>")},
		{Name: "static/gallery.css", Data: []byte("body{}")},
	}

	manifest, err := snapshot.Run(context.Background(), store, pages)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	t.Run("all pages stored in order", func(t *testing.T) {
		want := []string{"index.html", "demo/hello.html", "static/gallery.css", snapshot.ManifestName}
		if len(store.order) != len(want) {
			t.Fatalf("stored %v, want %v", store.order, want)
		}
		for i, name := range want {
			if store.order[i] != name {
				t.Errorf("order[%d] = %q, want %q", i, store.order[i], name)
			}
		}
	})

	t.Run("content types follow extensions", func(t *testing.T) {
		if ct := store.types["index.html"]; !strings.HasPrefix(ct, "text/html") {
			t.Errorf("index.html content type = %q, want text/html", ct)
		}
		if ct := store.types["static/gallery.css"]; !strings.HasPrefix(ct, "text/css") {
			t.Errorf("gallery.css content type = %q, want text/css", ct)
		}
		if ct := store.types[snapshot.ManifestName]; ct != "application/json" {
			t.Errorf("manifest content type = %q, want application/json", ct)
		}
	})

	t.Run("manifest identifies the run", func(t *testing.T) {
		if _, err := uuid.Parse(manifest.ID); err != nil {
			t.Errorf("ID %q is not a UUID: %v", manifest.ID, err)
		}
		if manifest.CreatedAt.Location() != time.UTC {
			t.Errorf("CreatedAt location = %v, want UTC", manifest.CreatedAt.Location())
		}
		if time.Since(manifest.CreatedAt) > time.Minute {
			t.Errorf("CreatedAt = %v, want roughly now", manifest.CreatedAt)
		}
	})

	t.Run("manifest digests match page bytes", func(t *testing.T) {
		if len(manifest.Pages) != len(pages) {
			t.Fatalf("manifest lists %d pages, want %d", len(manifest.Pages), len(pages))
		}
		for i, page := range pages {
			entry := manifest.Pages[i]
			if entry.Name != page.Name {
				t.Errorf("Pages[%d].Name = %q, want %q", i, entry.Name, page.Name)
			}
			if entry.Size != int64(len(page.Data)) {
				t.Errorf("Pages[%d].Size = %d, want %d", i, entry.Size, len(page.Data))
			}
			sum := sha256.Sum256(page.Data)
			if entry.SHA256 != hex.EncodeToString(sum[:]) {
				t.Errorf("Pages[%d].SHA256 = %q, want digest of its data", i, entry.SHA256)
			}
		}
	})

	t.Run("stored manifest round-trips", func(t *testing.T) {
		var stored snapshot.Manifest
		if err := json.Unmarshal(store.objects[snapshot.ManifestName], &stored); err != nil {
			t.Fatalf("stored manifest is not valid JSON: %v", err)
		}
		if stored.ID != manifest.ID {
			t.Errorf("stored ID = %q, want %q", stored.ID, manifest.ID)
		}
		if len(stored.Pages) != len(manifest.Pages) {
			t.Errorf("stored manifest lists %d pages, want %d", len(stored.Pages), len(manifest.Pages))
		}
	})

	t.Run("total size", func(t *testing.T) {
		var want int64
		for _, p := range pages {
			want += int64(len(p.Data))
		}
		if got := manifest.TotalSize(); got != want {
			t.Errorf("TotalSize() = %d, want %d", got, want)
		}
	})
}

func TestRun_StoreFailureAbortsWithoutManifest(t *testing.T) {
	store := newMemStore()
	store.failOn = "demo/bad.html"

	pages := []snapshot.Page{
		{Name: "index.html", Data: []byte("a")},
		{Name: "demo/bad.html", Data: []byte("b")},
		{Name: "demo/never.html", Data: []byte("c")},
	}

	manifest, err := snapshot.Run(context.Background(), store, pages)
	if err == nil {
		t.Fatal("Run() should surface the store failure")
	}
	if manifest != nil {
		t.Error("failed run should not return a manifest")
	}
	if !strings.Contains(err.Error(), "demo/bad.html") {
		t.Errorf("error %q should name the failing page", err)
	}

	if _, ok := store.objects[snapshot.ManifestName]; ok {
		t.Error("failed run must not write a manifest")
	}
	if _, ok := store.objects["demo/never.html"]; ok {
		t.Error("pages after the failure must not be written")
	}
}

func TestRun_EmptyPages(t *testing.T) {
	store := newMemStore()

	manifest, err := snapshot.Run(context.Background(), store, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(manifest.Pages) != 0 {
		t.Errorf("manifest lists %d pages, want 0", len(manifest.Pages))
	}
	if _, ok := store.objects[snapshot.ManifestName]; !ok {
		t.Error("even an empty run writes its manifest")
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"index.html", "text/html"},
		{"demo/cards.html", "text/html"},
		{"static/gallery.css", "text/css"},
		{"manifest.json", "application/json"},
		{"unknown.bin", "application/octet-stream"},
		{"no-extension", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := snapshot.ContentTypeFor(tt.name); !strings.HasPrefix(got, tt.want) {
			t.Errorf("ContentTypeFor(%q) = %q, want prefix %q", tt.name, got, tt.want)
		}
	}
}
