// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Package api exposes the recommendation engine over HTTP. All routes
// live under /api/v1 and return the shared JSON envelope; /health and
// /metrics sit at the root for probes and scrapers.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/config"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/engine"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/logging"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/metrics"
)

// Server wires the engine to the chi router.
type Server struct {
	engine *engine.Engine
	cfg    config.APIConfig
	log    zerolog.Logger
}

// NewServer builds the API server around an engine.
func NewServer(eng *engine.Engine, cfg config.APIConfig) *Server {
	return &Server{
		engine: eng,
		cfg:    cfg,
		log:    logging.With().Str("component", "api").Logger(),
	}
}

// Router assembles middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(s.cfg.RateLimitRequests, s.cfg.RateLimitWindow))

		r.Get("/recommendations/user/{userID}", s.handleGetRecommendations)
		r.Get("/recommendations/path", s.handleGetPath)

		r.Post("/ratings", s.handlePostRating)
		r.Put("/users/{userID}/preferences", s.handlePutPreferences)
		r.Get("/users/{userID}/similar", s.handleGetSimilarUsers)
		r.Get("/users/{userID}/behavior", s.handleGetBehavior)

		r.Get("/movies/top", s.handleGetTopMovies)
		r.Get("/movies/genre/{genre}", s.handleGetMoviesByGenre)

		r.Get("/report", s.handleGetReport)
		r.Put("/config/weights", s.handlePutWeights)

		r.Post("/analyze/genres", s.handleAnalyzeGenres)
	})

	return r
}

// instrument records request counts and latency per route.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(started).Seconds())
	})
}
