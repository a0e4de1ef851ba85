// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package api

import (
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/models"
)

// defaultAnalysisGenres seed the response when a watchlist carries no
// genre information at all.
var defaultAnalysisGenres = []string{"Action", "Drama", "Comedy", "Thriller", "Sci-Fi"}

// AnalyzeGenresRequest is a watchlist to mine for genre affinity.
type AnalyzeGenresRequest struct {
	Movies []WatchedMovie `json:"movies"`
}

// WatchedMovie is one watchlist entry.
type WatchedMovie struct {
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

// GenreRank is one analyzed genre: its watch frequency and its distance
// from the anchor genre in the frequency graph. Smaller distance means
// closer affinity to the dominant viewing habit.
type GenreRank struct {
	Genre     string `json:"genre"`
	Frequency int    `json:"frequency"`
	Distance  int    `json:"distance"`
}

// handleAnalyzeGenres ranks the genres of a watchlist. Genres form a
// fully connected graph where the edge between two genres weighs one plus
// the gap between their watch frequencies; distances are relaxed from the
// first genre seen. Genres watched about as often as the anchor end up
// close, outliers end up far.
func (s *Server) handleAnalyzeGenres(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req AnalyzeGenresRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "malformed request body", err)
		return
	}

	ranks := analyzeGenres(req.Movies)
	respondJSON(w, http.StatusOK, ok(ranks, started, len(ranks)))
}

func analyzeGenres(movies []WatchedMovie) []GenreRank {
	freq := make(map[string]int)
	var order []string
	for _, m := range movies {
		for _, g := range m.Genres {
			if g == "" {
				continue
			}
			if _, seen := freq[g]; !seen {
				order = append(order, g)
			}
			freq[g]++
		}
	}

	if len(order) == 0 {
		ranks := make([]GenreRank, len(defaultAnalysisGenres))
		for i, g := range defaultAnalysisGenres {
			ranks[i] = GenreRank{Genre: g}
		}
		return ranks
	}

	// Fully connected graph, relaxed from the first genre seen. A stack
	// instead of a priority queue: with every node adjacent to every
	// other, repeated relaxation converges quickly anyway.
	dist := make(map[string]int, len(order))
	for _, g := range order {
		dist[g] = math.MaxInt
	}
	anchor := order[0]
	dist[anchor] = 0

	stack := []string{anchor}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range order {
			if next == cur {
				continue
			}
			weight := 1 + abs(freq[cur]-freq[next])
			if dist[cur]+weight < dist[next] {
				dist[next] = dist[cur] + weight
				stack = append(stack, next)
			}
		}
	}

	ranks := make([]GenreRank, 0, len(order))
	for _, g := range order {
		ranks = append(ranks, GenreRank{Genre: g, Frequency: freq[g], Distance: dist[g]})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		if ranks[i].Frequency != ranks[j].Frequency {
			return ranks[i].Frequency > ranks[j].Frequency
		}
		return ranks[i].Genre < ranks[j].Genre
	})
	return ranks
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
