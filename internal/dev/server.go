package dev

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fluentdom-go/fluentdom/internal/config"
	"github.com/fluentdom-go/fluentdom/internal/errors"
	"github.com/fluentdom-go/fluentdom/internal/gallery"
	"github.com/fluentdom-go/fluentdom/pkg/middleware"
)

// Options configures the development server.
type Options struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives request and lifecycle logs. Defaults to a no-op logger.
	Logger *zap.Logger

	// Watch enables file watching. Hot reload additionally requires
	// dev.hotReload in the configuration.
	Watch bool

	// OnReload is called after browsers are told to reload.
	OnReload func(clients int)
}

// Server is the development server. It renders gallery pages on demand
// and pushes reload notifications to connected browsers.
type Server struct {
	config       *config.Config
	options      Options
	logger       *zap.Logger
	watcher      *Watcher
	reloadServer *ReloadServer
	httpServer   *http.Server
	changeCh     chan Change
	mu           sync.Mutex
	running      bool
}

// NewServer creates a new development server.
func NewServer(options Options) (*Server, error) {
	cfg := options.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		config:  cfg,
		options: options,
		logger:  logger,
	}

	if options.Watch {
		watcher, err := NewWatcher(WatcherConfig{
			Paths:    CollectWatchPaths(cfg),
			Ignore:   append(DefaultIgnore, cfg.Dev.Ignore...),
			Debounce: 100 * time.Millisecond,
			Logger:   logger,
		})
		if err != nil {
			return nil, errors.Newf(errors.CategoryServe, "starting file watcher: %v", err)
		}
		s.watcher = watcher
		if cfg.Dev.HotReload {
			s.reloadServer = NewReloadServer()
		}
	}

	return s, nil
}

// Run serves the gallery until the context is cancelled or a component
// fails. It returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	staticPath := s.config.StaticPath()
	if _, err := os.Stat(staticPath); err != nil {
		return errors.New("E202").WithDetail("Looked for " + staticPath + ".")
	}

	ln, err := net.Listen("tcp", s.config.DevAddress())
	if err != nil {
		return errors.New("E201").Wrap(err)
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		ln.Close()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{Handler: s.routes()}
	s.mu.Unlock()

	s.logger.Info("dev server listening",
		zap.String("url", s.config.DevURL()),
		zap.Bool("watch", s.watcher != nil),
		zap.Bool("hot_reload", s.reloadServer != nil))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			return errors.FromError(err, "E201")
		}
		return nil
	})

	if s.watcher != nil {
		s.changeCh = make(chan Change, 64)
		s.watcher.OnChange(func(change Change) {
			select {
			case s.changeCh <- change:
			default:
			}
		})

		g.Go(func() error {
			return s.watcher.Start(gctx)
		})
		g.Go(func() error {
			s.processChanges(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.Stop()
		return nil
	})

	return g.Wait()
}

// Stop shuts the server down. It is safe to call more than once.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Handler returns the server's HTTP handler so it can be mounted inside a
// larger application instead of run standalone.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// routes builds the HTTP handler tree.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry())
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/demo/{name}", s.handleDemo)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if s.reloadServer != nil {
		r.Get("/_fluentdom/reload", s.reloadServer.HandleWebSocket)
	}

	staticRoute := strings.TrimSuffix(s.config.StaticRoute(), "/")
	fileServer := http.FileServer(http.Dir(s.config.StaticPath()))
	r.Handle(staticRoute+"/*", http.StripPrefix(staticRoute+"/", fileServer))

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	page, err := gallery.RenderIndex()
	middleware.RecordRender("index", time.Since(start), err)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.writeHTML(w, page)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	demo, ok := gallery.Lookup(name)
	if !ok {
		s.notFound(w, name)
		return
	}

	start := time.Now()
	page, err := gallery.RenderPage(demo)
	middleware.RecordRender(demo.Name, time.Since(start), err)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.writeHTML(w, page)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// writeHTML sends a rendered page, injecting the reload client script
// when hot reload is active.
func (s *Server) writeHTML(w http.ResponseWriter, page string) {
	if s.reloadEnabled() {
		page = injectClientScript(page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// renderError sends a 500 page describing a render failure.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", zap.Error(err))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	reloadScript := ""
	if s.reloadEnabled() {
		reloadScript = DevClientScript
	}
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>fluentdom dev server</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Render Failed</h1>
<pre style="white-space: pre-wrap; word-wrap: break-word; background: #2a2a2a; padding: 20px; border-radius: 8px;">%s</pre>
<p style="color: #888;">The demo returned an error while rendering.</p>
%s
</body>
</html>`, html.EscapeString(err.Error()), reloadScript)
}

// notFound sends a 404 page for an unknown demo name.
func (s *Server) notFound(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>fluentdom dev server</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Demo Not Found</h1>
<p>No demo named <code>%s</code> is registered.</p>
<p><a href="/" style="color: #8be9fd;">Back to the gallery</a></p>
</body>
</html>`, html.EscapeString(name))
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(changes)
		}
	}
}

// handleChanges handles a batch of file changes. A batch that touches
// anything besides stylesheets triggers a full reload; otherwise the
// browsers just swap CSS in place.
func (s *Server) handleChanges(changes []Change) {
	if len(changes) == 0 {
		return
	}

	hasCSS := false
	hasOther := false
	var cssPath string

	for _, change := range changes {
		s.logger.Debug("file changed", zap.String("path", change.Path))
		switch change.Type {
		case ChangeCSS:
			hasCSS = true
			if cssPath == "" {
				cssPath = change.Path
			}
		default:
			hasOther = true
		}
	}

	if hasOther {
		s.notifyReload()
		return
	}
	if hasCSS {
		s.notifyCSS(cssPath)
	}
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		s.logger.Info("files changed, hot reload disabled")
		return
	}

	s.reloadServer.NotifyReload()
	clients := s.reloadServer.ClientCount()
	if s.options.OnReload != nil {
		s.options.OnReload(clients)
	}
	s.logger.Info("reloaded browsers", zap.Int("clients", clients))
}

func (s *Server) notifyCSS(path string) {
	if !s.reloadEnabled() {
		s.logger.Info("stylesheet changed, hot reload disabled")
		return
	}

	s.reloadServer.NotifyCSS(path)
	s.logger.Info("stylesheet reloaded", zap.String("path", path))
}

func (s *Server) reloadEnabled() bool {
	return s.reloadServer != nil
}

// injectClientScript inserts the hot reload script into rendered HTML.
func injectClientScript(page string) string {
	if idx := strings.LastIndex(page, "</body>"); idx != -1 {
		return page[:idx] + DevClientScript + page[idx:]
	}
	if idx := strings.LastIndex(page, "</html>"); idx != -1 {
		return page[:idx] + DevClientScript + page[idx:]
	}
	return page + DevClientScript
}
