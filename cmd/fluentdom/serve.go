package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fluentdom-go/fluentdom/internal/config"
	"github.com/fluentdom-go/fluentdom/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		port       int
		host       string
		watch      bool
		configPath string
		logJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery development server",
		Long: `Start the development server with hot reload.

The server renders the demo gallery on every request, watches for
file changes, and refreshes connected browsers.

Examples:
  fluentdom serve
  fluentdom serve --port=8080
  fluentdom serve --host=0.0.0.0 --watch=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, watch, configPath, logJSON)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from fluentdom.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from fluentdom.json)")
	cmd.Flags().BoolVar(&watch, "watch", true, "Watch files and reload browsers on change")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to fluentdom.json")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Log as JSON instead of console output")

	return cmd
}

func runServe(port int, host string, watch bool, configPath string, logJSON bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	logger, err := newLogger(logJSON)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Print banner
	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	server, err := dev.NewServer(dev.Options{
		Config: cfg,
		Logger: logger,
		Watch:  watch,
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info("Serving %s at %s", cfg.PageTitle(), cfg.DevURL())
	if watch {
		info("Watching for changes (ctrl-c to stop)")
	}
	fmt.Println()

	return server.Run(ctx)
}

// loadConfig loads the project config from an explicit path, or walks up
// from the working directory, falling back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadOrDefault()
}

// newLogger builds the CLI logger. Console output by default, JSON for
// machine consumption.
func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProductionConfig().Build()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
