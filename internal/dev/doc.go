// Package dev provides the gallery development server and hot reload.
//
// This package implements:
//   - On-demand rendering of the demo gallery
//   - File watching for CSS and asset changes
//   - WebSocket-based browser refresh
//   - Request logging, metrics, and tracing middleware
//
// # Architecture
//
// The development server consists of several components:
//
//   - Server: Routes requests and renders gallery pages
//   - Watcher: Monitors the file system for changes
//   - ReloadServer: Notifies browsers of changes via WebSocket
//
// Pages are rendered in process on every request, so code changes
// require a restart; the watcher exists for stylesheets and static
// assets, which reload without one.
//
// # Usage
//
//	srv, err := dev.NewServer(dev.Options{
//	    Config: cfg,
//	    Logger: logger,
//	    Watch:  true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := srv.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// Hot reload can be disabled via fluentdom.json (dev.hotReload=false).
// Watch paths default to the static directory plus any entries in
// dev.watch.
//
// # Hot Reload Protocol
//
// The browser connects to /_fluentdom/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}             // Triggers full page reload
//	{"type": "css", "file": "..."} // Triggers CSS-only reload
package dev
