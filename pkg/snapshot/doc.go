// Package snapshot writes rendered gallery pages to a storage backend.
//
// A snapshot is a self-contained copy of the rendered site: every page,
// the static assets it references, and a manifest describing what was
// written. Snapshots back two workflows:
//
//   - Publishing: push the rendered gallery to a static host (a local
//     directory for a file server, or an S3 bucket behind a CDN).
//   - Regression diffing: compare manifests between runs; a changed
//     SHA-256 digest pinpoints the page whose markup moved.
//
// # Stores
//
// Storage backends implement Store. Two ship with the package:
//
//	store := snapshot.NewDirStore("dist")
//
//	client := s3.NewFromConfig(cfg)
//	store := snapshot.NewS3Store(client, "my-bucket", "gallery/")
//
// # Usage
//
// Collect the pages, then run them through a store:
//
//	manifest, err := snapshot.Run(ctx, store, pages)
//
// Run writes each page and finishes with manifest.json. It stops at the
// first store failure, so a partial snapshot never gets a manifest.
package snapshot
