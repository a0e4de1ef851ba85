// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/metrics"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/models"
)

// RatingRequest is the POST /ratings payload.
type RatingRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	MovieID string `json:"movie_id" validate:"required"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
}

// PreferencesRequest is the PUT /users/{userID}/preferences payload.
type PreferencesRequest struct {
	Genres []string `json:"genres" validate:"required"`
}

// WeightsRequest is the PUT /config/weights payload.
type WeightsRequest struct {
	Collaborative float64 `json:"collaborative" validate:"gte=0"`
	Content       float64 `json:"content" validate:"gte=0"`
}

func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")
	method := r.URL.Query().Get("method")
	k := getIntParam(r, "k", 0)

	recs, err := s.engine.Recommendations(userID, method, k)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	label := method
	if label == "" {
		label = "default"
	}
	metrics.RecommendationsServed.WithLabelValues(label).Inc()
	respondJSON(w, http.StatusOK, ok(recs, started, len(recs)))
}

func (s *Server) handlePostRating(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req RatingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "malformed request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := s.engine.AddUserRating(req.UserID, req.MovieID, req.Rating); err != nil {
		respondEngineError(w, err)
		return
	}
	s.updateGraphMetrics()
	respondJSON(w, http.StatusCreated, ok(req, started, 1))
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	var req PreferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "malformed request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := s.engine.UpdateUserPreferences(userID, req.Genres); err != nil {
		respondEngineError(w, err)
		return
	}
	s.updateGraphMetrics()
	respondJSON(w, http.StatusOK, ok(req.Genres, started, len(req.Genres)))
}

func (s *Server) handlePutWeights(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req WeightsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "malformed request body", err)
		return
	}

	if err := s.engine.SetWeights(req.Collaborative, req.Content); err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ok(s.engine.Weights(), started, 1))
}

func (s *Server) handleGetSimilarUsers(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")
	threshold := getFloatParam(r, "threshold", -1)

	similar, err := s.engine.SimilarUsers(userID, threshold)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ok(similar, started, len(similar)))
}

func (s *Server) handleGetPath(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := r.URL.Query().Get("user")
	movieID := r.URL.Query().Get("movie")
	if userID == "" || movieID == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "user and movie query parameters are required", nil)
		return
	}

	path, err := s.engine.Path(userID, movieID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ok(path, started, len(path)))
}

func (s *Server) handleGetTopMovies(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	count := getIntParam(r, "count", 0)

	movies := s.engine.TopMovies(count)
	respondJSON(w, http.StatusOK, ok(movies, started, len(movies)))
}

func (s *Server) handleGetMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	genreID := chi.URLParam(r, "genre")
	count := getIntParam(r, "count", 0)

	movies, err := s.engine.MoviesByGenre(genreID, count)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ok(movies, started, len(movies)))
}

func (s *Server) handleGetBehavior(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	report, err := s.engine.AnalyzeUserBehavior(userID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ok(report, started, 1))
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	report := s.engine.GenerateSystemReport()
	respondJSON(w, http.StatusOK, ok(report, started, 1))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	stats := s.engine.Stats()
	respondJSON(w, http.StatusOK, ok(map[string]interface{}{
		"status": "healthy",
		"graph":  stats,
	}, started, 1))
}

// updateGraphMetrics refreshes the size gauges after a mutation.
func (s *Server) updateGraphMetrics() {
	stats := s.engine.Stats()
	metrics.SetGraphSize(stats.Users, stats.Movies, stats.Genres)
	metrics.SetEdgeCounts(stats.EdgesByType)
}
