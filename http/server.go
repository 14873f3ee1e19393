// Package http serves the reading log over a REST API, pushes change events
// to browsers over a WebSocket, and exposes Prometheus metrics.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/readlog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP front end of the reading log. It implements http.Handler.
type Server struct {
	store   readlog.BookStore
	render  readlog.RenderFunc
	logger  *slog.Logger
	version string

	registry *prometheus.Registry
	metrics  *metrics
	hub      *Hub
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with and
// served from. Defaults to a fresh registry per server.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithVersion sets the version reported by /api/version.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer returns a server backed by store that renders reviews with render.
func NewServer(store readlog.BookStore, render readlog.RenderFunc, opts ...Option) *Server {
	s := &Server{
		store:   store,
		render:  render,
		logger:  slog.Default(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry)
	s.hub = NewHub(s.logger, s.metrics.wsClients)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/ws", s.hub.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", s.handleVersion)
		r.Post("/preview", s.handlePreview)
		r.Route("/books", func(r chi.Router) {
			r.Get("/", s.handleListBooks)
			r.Post("/", s.handleCreateBook)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetBook)
				r.Put("/", s.handleUpdateBook)
				r.Delete("/", s.handleDeleteBook)
				r.Get("/review", s.handleGetReview)
			})
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Publish pushes an event to every connected WebSocket client.
func (s *Server) Publish(e readlog.Event) {
	s.hub.Publish(e)
}

// ListenAndServe serves on addr until ctx is cancelled, then closes all
// WebSocket clients and shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// observe logs each request and records it in the request counter.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			// Hijacked connections, such as WebSocket upgrades.
			status = http.StatusSwitchingProtocols
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.logger.Info("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
	})
}
