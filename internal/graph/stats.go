// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import "github.com/rs/zerolog"

// Stats returns node and edge counts by kind.
func (g *Graph) Stats() Stats {
	s := Stats{
		Users:       len(g.users),
		Movies:      len(g.movies),
		Genres:      len(g.genres),
		EdgesByType: make(map[string]int, 3),
	}
	for _, edges := range g.adjacency {
		for _, e := range edges {
			s.Edges++
			s.EdgesByType[e.Type.String()]++
		}
	}
	return s
}

// LogStats emits the current graph size as one structured log event.
func (g *Graph) LogStats(logger zerolog.Logger) {
	s := g.Stats()
	logger.Info().
		Int("users", s.Users).
		Int("movies", s.Movies).
		Int("genres", s.Genres).
		Int("edges", s.Edges).
		Int("rated_edges", s.EdgesByType[EdgeRated.String()]).
		Int("prefers_edges", s.EdgesByType[EdgePrefers.String()]).
		Int("belongs_to_edges", s.EdgesByType[EdgeBelongsTo.String()]).
		Msg("graph statistics")
}
