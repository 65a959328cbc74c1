// Package server exposes the extractors over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness probe
//	GET  /metrics                 Prometheus metrics (when enabled)
//	GET  /api/formats             supported format names
//	POST /api/extract/{format}    extract from the HTML request body
//	POST /api/manifest            parse a web app manifest body
//
// The extract and manifest routes read an optional base_url query
// parameter. The request Content-Type charset, if any, is used to decode
// the body.
package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yfedoseev/meta-oxide/extractor"
	"github.com/yfedoseev/meta-oxide/internal/config"
)

// Server is a wrapper around chi router.
type Server struct {
	*chi.Mux
	ext     extractor.Extractor
	cfg     config.ServerConfig
	maxBody int64
	logger  *slog.Logger
	metrics *metrics
}

// New creates the server and registers its routes. Metrics are registered
// on reg; a nil reg uses a private registry.
func New(cfg config.Config, ext extractor.Extractor, logger *slog.Logger, reg *prometheus.Registry) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		Mux:     chi.NewRouter(),
		ext:     ext,
		cfg:     cfg.Server,
		logger:  logger,
		metrics: newMetrics(reg),
	}
	if cfg.Extract.MaxBufferSize > 0 {
		s.maxBody = int64(cfg.Extract.MaxBufferSize)
	}

	s.Use(
		middleware.Recoverer,
		RequestID,
		Logger(logger),
		s.metrics.middleware,
	)

	s.Get("/healthz", s.healthz)
	if cfg.Server.Metrics {
		s.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	s.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
		r.Get("/formats", s.formats)
		r.Post("/extract/{format}", s.extract)
		r.Post("/manifest", s.manifest)
	})

	return s
}
