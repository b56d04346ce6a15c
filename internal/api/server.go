package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-parlay/internal/config"
)

// NewRouter builds the HTTP router with middleware, slate routes and
// the optional metrics endpoint.
func NewRouter(handler *SlateHandler, metricsHandler http.Handler, cfg config.APIConfig, metricsCfg config.MetricsConfig) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games/{gameID}/legs", handler.HandleGetLegs)
		r.Get("/games/{gameID}/parlays", handler.HandleGetParlays)
	})

	if metricsCfg.Enabled && metricsHandler != nil {
		r.Method(http.MethodGet, metricsCfg.Path, metricsHandler)
	}

	return r
}

// Server wraps the HTTP server with lifecycle management
type Server struct {
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer creates the API server from configuration
func NewServer(cfg *config.Config, router http.Handler, logger *logrus.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.APIAddress(),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.API.ReadTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(cfg.API.WriteTimeoutSeconds) * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving requests. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("API server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("API server shutting down")
	return s.httpServer.Shutdown(ctx)
}
