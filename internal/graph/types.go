// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

// EdgeType identifies the relationship an edge encodes.
type EdgeType int

const (
	// EdgeRated connects a user to a movie they rated. The edge weight
	// mirrors the rating stored on the user.
	EdgeRated EdgeType = iota

	// EdgePrefers connects a user to a genre they prefer. Weight is
	// always 1.
	EdgePrefers

	// EdgeBelongsTo connects a movie to its genre. Every movie has
	// exactly one.
	EdgeBelongsTo
)

// String returns a human-readable edge type name.
func (t EdgeType) String() string {
	switch t {
	case EdgeRated:
		return "rated"
	case EdgePrefers:
		return "prefers"
	case EdgeBelongsTo:
		return "belongs_to"
	default:
		return "unknown"
	}
}

// Edge is a directed, typed, weighted connection between two nodes.
type Edge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Type   EdgeType `json:"type"`
	Weight int      `json:"weight"`
}

// User is a person node. Ratings holds one entry per rated movie and is
// kept in lockstep with the user's rated edges.
type User struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	PreferredGenres []string       `json:"preferred_genres"`
	Ratings         map[string]int `json:"ratings"`
}

// Movie is a film node. Rating is the reference (editorial) rating on the
// five-point scale, independent of user ratings.
type Movie struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`
	Year   int     `json:"year"`
}

// Genre is a category node.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Recommendation is a single ranked result: the full movie record plus
// the strategy score that ordered it.
type Recommendation struct {
	MovieID string  `json:"movie_id"`
	Title   string  `json:"title"`
	Genre   string  `json:"genre"`
	Rating  float64 `json:"rating"`
	Year    int     `json:"year"`
	Score   float64 `json:"score"`
}

// SimilarUser pairs a user id with its similarity to the queried user.
type SimilarUser struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// Stats summarizes graph size by node and edge kind.
type Stats struct {
	Users       int            `json:"users"`
	Movies      int            `json:"movies"`
	Genres      int            `json:"genres"`
	Edges       int            `json:"edges"`
	EdgesByType map[string]int `json:"edges_by_type"`
}
