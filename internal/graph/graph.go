// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Package graph implements the in-memory recommendation graph: users,
// movies, and genres as nodes, with typed directed edges (rated, prefers,
// belongs_to) in a single adjacency list.
//
// The graph performs no locking of its own. The engine that owns it
// serializes writers and admits concurrent readers.
//
// Every mutating operation validates all of its inputs before touching
// any state, so a failed call leaves the graph exactly as it was.
package graph

import (
	"fmt"
	"math"
	"sort"
)

// RatingMin and RatingMax bound the integer user rating scale.
const (
	RatingMin = 1
	RatingMax = 5
)

// Graph is the recommendation graph. The zero value is not usable; call New.
type Graph struct {
	users     map[string]*User
	movies    map[string]*Movie
	genres    map[string]*Genre
	adjacency map[string][]Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		users:     make(map[string]*User),
		movies:    make(map[string]*Movie),
		genres:    make(map[string]*Genre),
		adjacency: make(map[string][]Edge),
	}
}

// AddUser inserts a user node. Preferred genres must already exist; a
// prefers edge is created for each. Duplicate genre ids in the preference
// list collapse to one entry.
func (g *Graph) AddUser(id, name string, preferredGenres []string) error {
	if _, ok := g.users[id]; ok {
		return fmt.Errorf("user %q: %w", id, ErrDuplicateID)
	}
	for _, genreID := range preferredGenres {
		if _, ok := g.genres[genreID]; !ok {
			return fmt.Errorf("user %q prefers genre %q: %w", id, genreID, ErrUnknownReference)
		}
	}

	u := &User{
		ID:      id,
		Name:    name,
		Ratings: make(map[string]int),
	}
	seen := make(map[string]bool, len(preferredGenres))
	for _, genreID := range preferredGenres {
		if seen[genreID] {
			continue
		}
		seen[genreID] = true
		u.PreferredGenres = append(u.PreferredGenres, genreID)
		g.adjacency[id] = append(g.adjacency[id], Edge{From: id, To: genreID, Type: EdgePrefers, Weight: 1})
	}
	g.users[id] = u
	return nil
}

// AddMovie inserts a movie node and its belongs_to edge. The genre must
// already exist.
func (g *Graph) AddMovie(id, title, genreID string, rating float64, year int) error {
	if _, ok := g.movies[id]; ok {
		return fmt.Errorf("movie %q: %w", id, ErrDuplicateID)
	}
	if _, ok := g.genres[genreID]; !ok {
		return fmt.Errorf("movie %q in genre %q: %w", id, genreID, ErrUnknownReference)
	}

	g.movies[id] = &Movie{ID: id, Title: title, Genre: genreID, Rating: rating, Year: year}
	g.adjacency[id] = append(g.adjacency[id], Edge{From: id, To: genreID, Type: EdgeBelongsTo, Weight: 1})
	return nil
}

// AddGenre inserts a genre node.
func (g *Graph) AddGenre(id, name string) error {
	if _, ok := g.genres[id]; ok {
		return fmt.Errorf("genre %q: %w", id, ErrDuplicateID)
	}
	g.genres[id] = &Genre{ID: id, Name: name}
	return nil
}

// AddRating records a user's rating of a movie. Re-rating overwrites the
// previous value and updates the existing rated edge weight in place.
func (g *Graph) AddRating(userID, movieID string, rating int) error {
	u, ok := g.users[userID]
	if !ok {
		return fmt.Errorf("rate by %q: %w", userID, ErrUnknownUser)
	}
	if _, ok := g.movies[movieID]; !ok {
		return fmt.Errorf("rate %q: %w", movieID, ErrUnknownMovie)
	}
	if rating < RatingMin || rating > RatingMax {
		return fmt.Errorf("rating %d: %w", rating, ErrInvalidRange)
	}

	_, rerate := u.Ratings[movieID]
	u.Ratings[movieID] = rating
	if rerate {
		edges := g.adjacency[userID]
		for i := range edges {
			if edges[i].Type == EdgeRated && edges[i].To == movieID {
				edges[i].Weight = rating
				return nil
			}
		}
	}
	g.adjacency[userID] = append(g.adjacency[userID], Edge{From: userID, To: movieID, Type: EdgeRated, Weight: rating})
	return nil
}

// AddGenrePreference appends a genre to a user's preferences. Adding a
// genre the user already prefers is a no-op.
func (g *Graph) AddGenrePreference(userID, genreID string) error {
	u, ok := g.users[userID]
	if !ok {
		return fmt.Errorf("preference for %q: %w", userID, ErrUnknownUser)
	}
	if _, ok := g.genres[genreID]; !ok {
		return fmt.Errorf("preference genre %q: %w", genreID, ErrUnknownReference)
	}

	for _, existing := range u.PreferredGenres {
		if existing == genreID {
			return nil
		}
	}
	u.PreferredGenres = append(u.PreferredGenres, genreID)
	g.adjacency[userID] = append(g.adjacency[userID], Edge{From: userID, To: genreID, Type: EdgePrefers, Weight: 1})
	return nil
}

// SetGenrePreferences replaces a user's preference list wholesale. Old
// prefers edges are removed, not appended to.
func (g *Graph) SetGenrePreferences(userID string, genreIDs []string) error {
	u, ok := g.users[userID]
	if !ok {
		return fmt.Errorf("preferences for %q: %w", userID, ErrUnknownUser)
	}
	for _, genreID := range genreIDs {
		if _, ok := g.genres[genreID]; !ok {
			return fmt.Errorf("preference genre %q: %w", genreID, ErrUnknownReference)
		}
	}

	kept := g.adjacency[userID][:0]
	for _, e := range g.adjacency[userID] {
		if e.Type != EdgePrefers {
			kept = append(kept, e)
		}
	}
	g.adjacency[userID] = kept

	u.PreferredGenres = nil
	seen := make(map[string]bool, len(genreIDs))
	for _, genreID := range genreIDs {
		if seen[genreID] {
			continue
		}
		seen[genreID] = true
		u.PreferredGenres = append(u.PreferredGenres, genreID)
		g.adjacency[userID] = append(g.adjacency[userID], Edge{From: userID, To: genreID, Type: EdgePrefers, Weight: 1})
	}
	return nil
}

// User returns the user node for id, or ErrUnknownUser.
func (g *Graph) User(id string) (*User, error) {
	u, ok := g.users[id]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", id, ErrUnknownUser)
	}
	return u, nil
}

// Movie returns the movie node for id, or ErrUnknownMovie.
func (g *Graph) Movie(id string) (*Movie, error) {
	m, ok := g.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %q: %w", id, ErrUnknownMovie)
	}
	return m, nil
}

// Genre returns the genre node for id, or ErrUnknownReference.
func (g *Graph) Genre(id string) (*Genre, error) {
	ge, ok := g.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %q: %w", id, ErrUnknownReference)
	}
	return ge, nil
}

// UserIDs returns all user ids in ascending order.
func (g *Graph) UserIDs() []string {
	return sortedKeys(g.users)
}

// MovieIDs returns all movie ids in ascending order.
func (g *Graph) MovieIDs() []string {
	return sortedKeys(g.movies)
}

// GenreIDs returns all genre ids in ascending order.
func (g *Graph) GenreIDs() []string {
	return sortedKeys(g.genres)
}

// Edges returns a copy of the outgoing edges of a node. Unknown nodes
// have no edges.
func (g *Graph) Edges(id string) []Edge {
	edges := g.adjacency[id]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

func sortedKeys[V any](m map[string]*V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hasNode reports whether id names any node in the graph.
func (g *Graph) hasNode(id string) bool {
	if _, ok := g.users[id]; ok {
		return true
	}
	if _, ok := g.movies[id]; ok {
		return true
	}
	_, ok := g.genres[id]
	return ok
}

// roundScore trims float noise so equal blends compare equal.
func roundScore(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
