// Package server exposes the rendered pages over HTTP.
//
// Each request takes exactly one catalog snapshot from the store and
// renders against it for the request's entire duration, so a reload
// landing mid-render never mixes old and new templates. The server
// also carries the live-reload websocket endpoint and the metrics
// endpoint.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docsrv/docsrv/internal/config"
	"github.com/docsrv/docsrv/internal/logging"
	"github.com/docsrv/docsrv/internal/metrics"
	"github.com/docsrv/docsrv/internal/store"
	"github.com/docsrv/docsrv/internal/version"
)

// PageData is the context every page render receives.
type PageData struct {
	// Path is the request path the page was rendered for.
	Path string
	// Now is the render timestamp, for relative time formatting.
	Now time.Time
}

// Server renders pages from the catalog store.
type Server struct {
	store      *store.Store
	config     *config.Config
	logger     logging.Logger
	metrics    *metrics.Metrics
	livereload *LiveReload
}

// New creates the page server.
func New(s *store.Store, cfg *config.Config, logger logging.Logger, m *metrics.Metrics) *Server {
	return &Server{
		store:      s,
		config:     cfg,
		logger:     logger.WithComponent("server"),
		metrics:    m,
		livereload: NewLiveReload(logger),
	}
}

// LiveReload returns the hub reloads are announced on.
func (s *Server) LiveReload() *LiveReload { return s.livereload }

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/-/health", s.handleHealth)
	r.Get("/-/version", s.handleVersion)
	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/ws/reload", s.livereload.Handle)
	r.Get("/*", s.handlePage)

	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info(ctx, "serving pages", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = s.config.Templates.Index
	}

	// One snapshot per request: the whole render uses the catalog
	// captured here even if a swap lands while it runs.
	snapshot := s.store.Current()

	if !snapshot.Has(name) {
		s.metrics.RendersTotal.WithLabelValues("not_found").Inc()
		http.NotFound(w, r)
		return
	}

	data := PageData{Path: r.URL.Path, Now: time.Now()}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := snapshot.Render(w, name, data); err != nil {
		s.metrics.RendersTotal.WithLabelValues("error").Inc()
		s.logger.Error(r.Context(), err, "render failed", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.metrics.RendersTotal.WithLabelValues("success").Inc()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok: %d templates\n", s.store.Current().Len())
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "docsrv %s %s\n", version.BuildVersion(), version.Platform())
}
