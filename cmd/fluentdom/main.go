package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluentdom-go/fluentdom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┬ ┬┌─┐┌┐┌┌┬┐┌┬┐┌─┐┌┬┐
  ├┤ │  │ │├┤ │││ │  │││ ││││
  └  ┴─┘└─┘└─┘┘└┘ ┴ ─┴┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "fluentdom",
		Short: "Tooling for the fluentdom element builder library",
		Long: `fluentdom is the companion tool for the fluentdom library.

It serves the demo gallery during development and snapshots the
rendered pages for publishing. Features include:

  • Demo gallery with every builder pattern
  • Hot reload development server
  • Static snapshots with a content manifest
  • Optional publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		initCmd(),
		serveCmd(),
		snapshotCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the fluentdom ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
