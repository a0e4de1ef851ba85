// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/graph"
)

// BehaviorReport summarizes one user's activity. All fields derive from
// graph state; generating a report mutates nothing.
type BehaviorReport struct {
	UserID            string         `json:"user_id"`
	Name              string         `json:"name"`
	TotalRatings      int            `json:"total_ratings"`
	AverageRating     float64        `json:"average_rating"`
	GenreDistribution map[string]int `json:"genre_distribution"`
	PreferredGenres   []string       `json:"preferred_genres"`
	SimilarUserCount  int            `json:"similar_user_count"`
}

// SystemReport is a service-wide snapshot.
type SystemReport struct {
	ReportID       string                 `json:"report_id"`
	GeneratedAt    time.Time              `json:"generated_at"`
	Stats          graph.Stats            `json:"stats"`
	TopMovies      []graph.Recommendation `json:"top_movies"`
	MoviesPerGenre map[string]int         `json:"movies_per_genre"`
	RequestsServed uint64                 `json:"requests_served"`
}

// AnalyzeUserBehavior builds a read-only activity report for one user.
func (e *Engine) AnalyzeUserBehavior(userID string) (*BehaviorReport, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	u, err := e.graph.User(userID)
	if err != nil {
		return nil, err
	}

	report := &BehaviorReport{
		UserID:            u.ID,
		Name:              u.Name,
		TotalRatings:      len(u.Ratings),
		GenreDistribution: make(map[string]int),
		PreferredGenres:   append([]string(nil), u.PreferredGenres...),
	}

	var sum int
	for movieID, rating := range u.Ratings {
		sum += rating
		if m, err := e.graph.Movie(movieID); err == nil {
			report.GenreDistribution[m.Genre]++
		}
	}
	if report.TotalRatings > 0 {
		report.AverageRating = float64(sum) / float64(report.TotalRatings)
	}

	similar, err := e.graph.FindSimilarUsers(userID, e.cfg.SimilarityThreshold)
	if err != nil {
		return nil, err
	}
	report.SimilarUserCount = len(similar)
	return report, nil
}

// GenerateSystemReport builds a service-wide snapshot: graph size, the
// current top movies, and per-genre movie counts.
func (e *Engine) GenerateSystemReport() *SystemReport {
	e.mu.RLock()
	defer e.mu.RUnlock()

	report := &SystemReport{
		ReportID:       uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Stats:          e.graph.Stats(),
		TopMovies:      e.graph.TopRatedMovies(e.cfg.MaxResults),
		MoviesPerGenre: make(map[string]int),
		RequestsServed: e.requestsServed.Load(),
	}
	for _, movieID := range e.graph.MovieIDs() {
		if m, err := e.graph.Movie(movieID); err == nil {
			report.MoviesPerGenre[m.Genre]++
		}
	}
	return report
}
