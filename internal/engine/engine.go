// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Package engine wraps the recommendation graph with strategy dispatch,
// runtime-tunable hybrid weights, analysis reports, and persistence.
//
// The engine owns the only reference to its graph and serializes access
// through one RWMutex: mutations take the write lock, queries the read
// lock. Handlers above it can therefore run on any goroutine.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/graph"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/logging"
)

// Sentinel errors for request-shaping failures. Graph-level kinds
// (unknown user, invalid range, ...) pass through unchanged.
var (
	ErrInvalidMethod  = errors.New("invalid recommendation method")
	ErrInvalidWeights = errors.New("invalid blend weights")
)

// Engine is the recommendation service core. Create with New.
type Engine struct {
	mu      sync.RWMutex
	graph   *graph.Graph
	weights Weights
	cfg     Config
	log     zerolog.Logger

	requestsServed atomic.Uint64
}

// New builds an engine around an empty graph.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return &Engine{
		graph:   graph.New(),
		weights: cfg.Weights,
		cfg:     cfg,
		log:     logging.With().Str("component", "engine").Logger(),
	}, nil
}

// Recommendations runs one strategy for a user. An empty method selects
// the configured default; maxResults is clamped to the configured cap and
// non-positive values mean "use the cap".
func (e *Engine) Recommendations(userID, method string, maxResults int) ([]graph.Recommendation, error) {
	if method == "" {
		method = e.cfg.DefaultMethod
	}
	if maxResults <= 0 || maxResults > e.cfg.MaxResults {
		maxResults = e.cfg.MaxResults
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	requestID := uuid.NewString()
	var (
		recs []graph.Recommendation
		err  error
	)
	switch method {
	case MethodCollaborative:
		recs, err = e.graph.CollaborativeRecommendations(userID, maxResults)
	case MethodContent:
		recs, err = e.graph.ContentRecommendations(userID, maxResults)
	case MethodHybrid:
		recs, err = e.graph.HybridRecommendations(userID, e.weights.Collaborative, e.weights.Content, maxResults)
	default:
		return nil, fmt.Errorf("method %q: %w", method, ErrInvalidMethod)
	}
	if err != nil {
		return nil, err
	}

	e.requestsServed.Add(1)
	e.log.Debug().
		Str("request_id", requestID).
		Str("user_id", userID).
		Str("method", method).
		Int("results", len(recs)).
		Msg("recommendations served")
	return recs, nil
}

// SetWeights replaces the hybrid blend. Negative components and all-zero
// blends are rejected and leave the current weights untouched.
func (e *Engine) SetWeights(collaborative, content float64) error {
	w := Weights{Collaborative: collaborative, Content: content}
	if err := w.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.weights = w
	e.mu.Unlock()

	e.log.Info().
		Float64("collaborative", collaborative).
		Float64("content", content).
		Msg("blend weights updated")
	return nil
}

// Weights returns the current hybrid blend.
func (e *Engine) Weights() Weights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weights
}

// AddUser inserts a user node.
func (e *Engine) AddUser(id, name string, preferredGenres []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph.AddUser(id, name, preferredGenres)
}

// AddMovie inserts a movie node.
func (e *Engine) AddMovie(id, title, genreID string, rating float64, year int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph.AddMovie(id, title, genreID, rating, year)
}

// AddGenre inserts a genre node.
func (e *Engine) AddGenre(id, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph.AddGenre(id, name)
}

// AddUserRating records or overwrites one rating.
func (e *Engine) AddUserRating(userID, movieID string, rating int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph.AddRating(userID, movieID, rating)
}

// UpdateUserPreferences replaces a user's preferred genres wholesale.
func (e *Engine) UpdateUserPreferences(userID string, genreIDs []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph.SetGenrePreferences(userID, genreIDs)
}

// SimilarUsers returns users similar to userID at or above threshold. A
// negative threshold selects the configured default.
func (e *Engine) SimilarUsers(userID string, threshold float64) ([]graph.SimilarUser, error) {
	if threshold < 0 {
		threshold = e.cfg.SimilarityThreshold
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.FindSimilarUsers(userID, threshold)
}

// Path explains a recommendation as a chain of graph nodes.
func (e *Engine) Path(userID, movieID string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.RecommendationPath(userID, movieID)
}

// TopMovies returns the best-rated movies overall.
func (e *Engine) TopMovies(count int) []graph.Recommendation {
	if count <= 0 || count > e.cfg.MaxResults {
		count = e.cfg.MaxResults
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.TopRatedMovies(count)
}

// MoviesByGenre returns the best-rated movies of one genre.
func (e *Engine) MoviesByGenre(genreID string, count int) ([]graph.Recommendation, error) {
	if count <= 0 || count > e.cfg.MaxResults {
		count = e.cfg.MaxResults
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.PopularMoviesByGenre(genreID, count)
}

// Stats returns graph size counters.
func (e *Engine) Stats() graph.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.Stats()
}

// LogStats emits graph size diagnostics through the engine logger.
func (e *Engine) LogStats() {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.graph.LogStats(e.log)
}
