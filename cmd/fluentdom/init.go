package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fluentdom-go/fluentdom/internal/config"
	"github.com/fluentdom-go/fluentdom/internal/errors"
)

// starterCSS seeds the static directory so a fresh project serves with
// styles before anyone has written their own.
const starterCSS = `body {
  font-family: system-ui, sans-serif;
  max-width: 960px;
  margin: 0 auto;
  padding: 0 2rem;
}

h1 {
  color: #2563eb;
}
`

func initCmd() *cobra.Command {
	var (
		name  string
		title string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a fluentdom project",
		Long: `Initialize a fluentdom project in the given directory.

Writes a fluentdom.json with defaults and seeds the static assets
directory. The directory is created if it does not exist.

Examples:
  fluentdom init
  fluentdom init my-gallery
  fluentdom init --name=my-gallery --title="My Gallery"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(dir, name, title, force)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().StringVar(&title, "title", "", "Gallery page title")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing fluentdom.json")

	return cmd
}

func runInit(dir, name, title string, force bool) error {
	printBanner()
	fmt.Println("  Initializing project...")
	fmt.Println()

	projectDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if name == "" {
		name = filepath.Base(projectDir)
	}
	if !isValidProjectName(name) {
		return errors.New("E103").
			WithDetail("Project name '" + name + "' contains spaces or path separators.").
			WithSuggestion("Use lowercase letters, numbers, and hyphens.")
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return err
	}

	if config.Exists(projectDir) && !force {
		return errors.New("E104")
	}

	cfg := config.New()
	cfg.Name = name
	cfg.Title = title

	info("Writing %s...", config.ConfigFileName)
	if err := cfg.SaveTo(filepath.Join(projectDir, config.ConfigFileName)); err != nil {
		return err
	}

	staticDir := cfg.StaticPath()
	info("Creating %s/...", cfg.Static.Dir)
	if err := os.MkdirAll(staticDir, 0755); err != nil {
		return err
	}

	cssPath := filepath.Join(staticDir, "gallery.css")
	if _, err := os.Stat(cssPath); os.IsNotExist(err) {
		info("Writing %s...", filepath.Join(cfg.Static.Dir, "gallery.css"))
		if err := os.WriteFile(cssPath, []byte(starterCSS), 0644); err != nil {
			return err
		}
	}

	fmt.Println()
	success("Initialized %s", name)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	if dir != "." {
		fmt.Printf("    cd %s\n", dir)
	}
	fmt.Println("    fluentdom serve")
	fmt.Println()
	fmt.Printf("  The gallery will be running at %s\n", cfg.DevURL())
	fmt.Println()

	return nil
}

func isValidProjectName(name string) bool {
	if name == "" {
		return false
	}
	// Basic validation: no spaces, no starting with number
	for i, r := range name {
		if r == ' ' || r == '/' || r == '\\' {
			return false
		}
		if i == 0 && r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}
