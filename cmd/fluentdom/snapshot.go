package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/fluentdom-go/fluentdom/internal/config"
	"github.com/fluentdom-go/fluentdom/internal/errors"
	"github.com/fluentdom-go/fluentdom/internal/gallery"
	"github.com/fluentdom-go/fluentdom/pkg/snapshot"
)

func snapshotCmd() *cobra.Command {
	var (
		output     string
		publish    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the gallery to static files",
		Long: `Render every gallery page to static HTML.

Pages are written to the output directory together with the static
assets and a manifest.json recording sizes and SHA-256 digests.

With --publish (or an S3 bucket in fluentdom.json) the snapshot is
also uploaded to S3 using the ambient AWS credentials.

Examples:
  fluentdom snapshot
  fluentdom snapshot --out=public
  fluentdom snapshot --publish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(output, publish, configPath)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from fluentdom.json)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish the snapshot to S3")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to fluentdom.json")

	return cmd
}

func runSnapshot(output string, publish bool, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if output != "" {
		cfg.Snapshot.Output = output
	}

	fmt.Println("  Rendering gallery...")
	fmt.Println()

	pages, err := collectPages(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outDir := cfg.OutputPath()
	manifest, err := snapshot.Run(ctx, snapshot.NewDirStore(outDir), pages)
	if err != nil {
		return errors.New("E301").Wrap(err)
	}

	fmt.Println()
	success("Wrote %d files (%s) to %s", len(manifest.Pages)+1, formatBytes(manifest.TotalSize()), outDir)
	info("Snapshot %s", manifest.ID)

	if !publish && !cfg.HasS3() {
		return nil
	}

	return publishSnapshot(ctx, cfg, pages)
}

// publishSnapshot uploads the snapshot to the configured S3 bucket.
func publishSnapshot(ctx context.Context, cfg *config.Config, pages []snapshot.Page) error {
	if !cfg.HasS3() {
		return errors.New("E302")
	}

	bucket := cfg.Snapshot.S3.Bucket
	prefix := cfg.Snapshot.S3.Prefix

	fmt.Println()
	info("Publishing to s3://%s/%s...", bucket, prefix)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Snapshot.S3.Region))
	if err != nil {
		return errors.New("E303").Wrap(err)
	}

	store := snapshot.NewS3Store(s3.NewFromConfig(awsCfg), bucket, prefix)
	if _, err := snapshot.Run(ctx, store, pages); err != nil {
		return errors.New("E303").Wrap(err)
	}

	success("Published %d files to s3://%s/%s", len(pages)+1, bucket, prefix)
	return nil
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// collectPages renders every gallery page and gathers the static assets.
func collectPages(cfg *config.Config) ([]snapshot.Page, error) {
	index, err := gallery.RenderIndex()
	if err != nil {
		return nil, err
	}
	pages := []snapshot.Page{{Name: "index.html", Data: []byte(index)}}
	info("index.html")

	for _, demo := range gallery.Demos() {
		markup, err := gallery.RenderPage(demo)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", demo.Name, err)
		}
		name := path.Join("demo", demo.Name+".html")
		pages = append(pages, snapshot.Page{Name: name, Data: []byte(markup)})
		info(name)
	}

	static, err := collectStatic(cfg.StaticPath())
	if err != nil {
		return nil, err
	}
	return append(pages, static...), nil
}

// collectStatic reads every file under the static directory into pages
// named under static/. A missing directory is skipped with a warning.
func collectStatic(root string) ([]snapshot.Page, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			warn("Static directory %s not found, skipping assets", root)
			return nil, nil
		}
		return nil, err
	}

	var pages []snapshot.Page
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := path.Join("static", filepath.ToSlash(rel))
		pages = append(pages, snapshot.Page{Name: name, Data: data})
		info(name)
		return nil
	})
	return pages, err
}
