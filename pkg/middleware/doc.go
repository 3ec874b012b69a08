// Package middleware provides HTTP middleware for the fluentdom dev server.
//
// This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//   - zap request logging
//
// All middleware uses the standard func(http.Handler) http.Handler shape,
// so it composes with chi's Use:
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.RequestLogger(logger))
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OpenTelemetry())
//
// # Prometheus Metrics
//
// The Prometheus middleware collects request metrics; the server's render
// path and reload hub feed the page and client instruments:
//   - fluentdom_http_requests_total
//   - fluentdom_http_request_duration_seconds
//   - fluentdom_page_renders_total
//   - fluentdom_page_render_duration_seconds
//   - fluentdom_reload_clients
//
// Expose them with promhttp:
//
//	r.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// The tracing middleware creates one server span per request, named after
// the matched chi route. It uses the global tracer provider by default, so
// it is a noop until the embedder installs a real provider.
package middleware
