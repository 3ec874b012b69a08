package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime"
	"path"
	"time"

	"github.com/google/uuid"
)

// ManifestName is the name of the manifest written at the end of a run.
const ManifestName = "manifest.json"

// Page is one rendered document to store. Name is a slash-separated path
// within the snapshot (e.g. "demo/cards.html"); stores map it onto their
// own layout.
type Page struct {
	Name string
	Data []byte
}

// Store is a snapshot storage backend. Put must be safe to call
// repeatedly with the same name; later writes win.
type Store interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
}

// Manifest describes one completed snapshot run.
type Manifest struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// CreatedAt is the UTC time the run started.
	CreatedAt time.Time `json:"created_at"`

	// Pages lists every stored page, in store order. The manifest
	// itself is not listed.
	Pages []ManifestPage `json:"pages"`
}

// ManifestPage records one stored page for later diffing.
type ManifestPage struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// TotalSize returns the byte count of all pages in the manifest.
func (m *Manifest) TotalSize() int64 {
	var total int64
	for _, p := range m.Pages {
		total += p.Size
	}
	return total
}

// Run stores every page, then a manifest.json describing them. Pages are
// written in slice order; the first store failure aborts the run with
// that error and no manifest, so readers can treat the manifest's
// existence as the run's commit mark.
func Run(ctx context.Context, store Store, pages []Page) (*Manifest, error) {
	manifest := &Manifest{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Pages:     make([]ManifestPage, 0, len(pages)),
	}

	for _, page := range pages {
		if err := store.Put(ctx, page.Name, ContentTypeFor(page.Name), page.Data); err != nil {
			return nil, fmt.Errorf("storing %s: %w", page.Name, err)
		}
		sum := sha256.Sum256(page.Data)
		manifest.Pages = append(manifest.Pages, ManifestPage{
			Name:   page.Name,
			Size:   int64(len(page.Data)),
			SHA256: hex.EncodeToString(sum[:]),
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if err := store.Put(ctx, ManifestName, "application/json", data); err != nil {
		return nil, fmt.Errorf("storing %s: %w", ManifestName, err)
	}

	return manifest, nil
}

// ContentTypeFor guesses a content type from the page name's extension,
// falling back to application/octet-stream.
func ContentTypeFor(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
