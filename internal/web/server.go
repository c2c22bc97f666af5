package web

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/worldview/internal/country"
	"github.com/alexisbeaulieu97/worldview/internal/logger"
)

// CountryService exposes the two fetches the web shell requires.
type CountryService interface {
	List(ctx context.Context) ([]country.Country, error)
	Get(ctx context.Context, code string) (country.Country, error)
}

// Config holds server configuration.
type Config struct {
	Addr    string
	Timeout time.Duration // per-request handler timeout
}

// Server is the server-rendered country browser.
type Server struct {
	cfg        Config
	service    CountryService
	log        *logger.Logger
	metrics    *Metrics
	gatherer   prometheus.Gatherer
	pages      *template.Template
	router     chi.Router
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithMetrics records requests on metrics and serves gatherer at /metrics.
func WithMetrics(metrics *Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = metrics
		s.gatherer = gatherer
	}
}

// New creates a server backed by svc.
func New(cfg Config, svc CountryService, opts ...Option) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Server{
		cfg:     cfg,
		service: svc,
		pages: template.Must(template.New("pages").
			Parse(layoutTemplate + listTemplate + detailTemplate + styleTemplate)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(instrument(s.log, s.metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Timeout))

	r.Get("/", s.handleList)
	r.Get("/country/{code}", s.handleDetail)
	r.Post("/theme", s.handleToggleTheme)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.Timeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.WithFields(map[string]any{"addr": s.cfg.Addr}).Info("web shell listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
