package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
)

// recordingProvider captures every span started through it.
type recordingProvider struct {
	embedded.TracerProvider
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{provider: p}
}

type recordingTracer struct {
	embedded.Tracer
	provider *recordingProvider
}

func (tr *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	span := &recordingSpan{name: name, attrs: make(map[attribute.Key]attribute.Value)}
	tr.provider.spans = append(tr.provider.spans, span)
	return trace.ContextWithSpan(ctx, span), span
}

type recordingSpan struct {
	embedded.Span
	name       string
	attrs      map[attribute.Key]attribute.Value
	status     codes.Code
	statusDesc string
	ended      bool
	recorded   []error
}

func (s *recordingSpan) End(...trace.SpanEndOption)            { s.ended = true }
func (s *recordingSpan) AddEvent(string, ...trace.EventOption) {}
func (s *recordingSpan) IsRecording() bool                     { return true }
func (s *recordingSpan) SpanContext() trace.SpanContext        { return trace.SpanContext{} }
func (s *recordingSpan) SetName(name string)                   { s.name = name }
func (s *recordingSpan) TracerProvider() trace.TracerProvider  { return nil }
func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.recorded = append(s.recorded, err)
}
func (s *recordingSpan) SetStatus(c codes.Code, desc string) {
	s.status, s.statusDesc = c, desc
}
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func TestOpenTelemetryMiddleware_RecordsSpan(t *testing.T) {
	provider := &recordingProvider{}

	r := chi.NewRouter()
	r.Use(OpenTelemetry(WithTracerProvider(provider), WithTracerName("test")))
	r.Get("/demo/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/demo/hello", nil))

	if len(provider.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(provider.spans))
	}
	span := provider.spans[0]

	if !span.ended {
		t.Error("span should be ended")
	}
	if span.name != "GET /demo/{name}" {
		t.Errorf("span name = %q, want %q", span.name, "GET /demo/{name}")
	}
	if got := span.attrs["http.route"].AsString(); got != "/demo/{name}" {
		t.Errorf("http.route = %q, want %q", got, "/demo/{name}")
	}
	if got := span.attrs["http.status_code"].AsInt64(); got != 200 {
		t.Errorf("http.status_code = %d, want 200", got)
	}
	if span.status != codes.Ok {
		t.Errorf("span status = %v, want Ok", span.status)
	}
}

func TestOpenTelemetryMiddleware_ErrorStatusOn5xx(t *testing.T) {
	provider := &recordingProvider{}

	r := chi.NewRouter()
	r.Use(OpenTelemetry(WithTracerProvider(provider)))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	if len(provider.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(provider.spans))
	}
	span := provider.spans[0]

	if span.status != codes.Error {
		t.Errorf("span status = %v, want Error", span.status)
	}
	if got := span.attrs["http.status_code"].AsInt64(); got != 500 {
		t.Errorf("http.status_code = %d, want 500", got)
	}
}

func TestOpenTelemetryMiddleware_FilterSkipsTracing(t *testing.T) {
	provider := &recordingProvider{}

	nextCalled := false
	r := chi.NewRouter()
	r.Use(OpenTelemetry(
		WithTracerProvider(provider),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if len(provider.spans) != 0 {
		t.Fatalf("spans = %d, want 0 when filter skips tracing", len(provider.spans))
	}
}

func TestOpenTelemetryMiddleware_PropagatesSpanContext(t *testing.T) {
	provider := &recordingProvider{}

	r := chi.NewRouter()
	r.Use(OpenTelemetry(WithTracerProvider(provider)))
	r.Get("/ctx", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := trace.SpanFromContext(r.Context()).(*recordingSpan); !ok {
			t.Error("handler context should carry the started span")
		}
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ctx", nil))
}
