// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package engine

import "fmt"

// InitializeSampleData populates the graph with a fixed demo dataset:
// five genres, eight movies, four users with ratings and preferences.
// Calling it on a graph that already holds any of the ids fails with
// the usual duplicate-id error and stops at the first conflict.
func (e *Engine) InitializeSampleData() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	genres := []struct{ id, name string }{
		{"action", "Action"},
		{"comedy", "Comedy"},
		{"drama", "Drama"},
		{"scifi", "Science Fiction"},
		{"thriller", "Thriller"},
	}
	for _, g := range genres {
		if err := e.graph.AddGenre(g.id, g.name); err != nil {
			return fmt.Errorf("sample genre: %w", err)
		}
	}

	movies := []struct {
		id, title, genre string
		rating           float64
		year             int
	}{
		{"m1", "The Matrix", "scifi", 4.7, 1999},
		{"m2", "Inception", "scifi", 4.6, 2010},
		{"m3", "The Dark Knight", "action", 4.8, 2008},
		{"m4", "Pulp Fiction", "drama", 4.5, 1994},
		{"m5", "The Hangover", "comedy", 3.9, 2009},
		{"m6", "Se7en", "thriller", 4.4, 1995},
		{"m7", "Interstellar", "scifi", 4.5, 2014},
		{"m8", "Superbad", "comedy", 3.8, 2007},
	}
	for _, m := range movies {
		if err := e.graph.AddMovie(m.id, m.title, m.genre, m.rating, m.year); err != nil {
			return fmt.Errorf("sample movie: %w", err)
		}
	}

	type rating struct {
		movie string
		value int
	}
	// Ratings are listed in movie-id order so every run builds identical
	// adjacency lists.
	users := []struct {
		id, name string
		genres   []string
		ratings  []rating
	}{
		{"u1", "Alice", []string{"scifi", "action"}, []rating{{"m1", 5}, {"m2", 4}, {"m3", 5}}},
		{"u2", "Bob", []string{"scifi", "thriller"}, []rating{{"m1", 4}, {"m2", 5}, {"m6", 4}, {"m7", 5}}},
		{"u3", "Carol", []string{"comedy", "drama"}, []rating{{"m4", 5}, {"m5", 4}, {"m8", 3}}},
		{"u4", "Dave", []string{"action"}, []rating{{"m1", 5}, {"m3", 4}, {"m6", 2}}},
	}
	for _, u := range users {
		if err := e.graph.AddUser(u.id, u.name, u.genres); err != nil {
			return fmt.Errorf("sample user: %w", err)
		}
		for _, r := range u.ratings {
			if err := e.graph.AddRating(u.id, r.movie, r.value); err != nil {
				return fmt.Errorf("sample rating: %w", err)
			}
		}
	}

	e.graph.LogStats(e.log)
	return nil
}
