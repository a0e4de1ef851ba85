// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import (
	"errors"
	"testing"
)

// testGraph builds a small fixture: three genres, four movies, three users.
func testGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()

	genres := []struct{ id, name string }{
		{"scifi", "Science Fiction"},
		{"drama", "Drama"},
		{"comedy", "Comedy"},
	}
	for _, ge := range genres {
		if err := g.AddGenre(ge.id, ge.name); err != nil {
			t.Fatalf("AddGenre(%s): %v", ge.id, err)
		}
	}

	movies := []struct {
		id, title, genre string
		rating           float64
		year             int
	}{
		{"m1", "The Matrix", "scifi", 4.7, 1999},
		{"m2", "Interstellar", "scifi", 4.5, 2014},
		{"m3", "The Godfather", "drama", 4.9, 1972},
		{"m4", "Superbad", "comedy", 3.8, 2007},
	}
	for _, m := range movies {
		if err := g.AddMovie(m.id, m.title, m.genre, m.rating, m.year); err != nil {
			t.Fatalf("AddMovie(%s): %v", m.id, err)
		}
	}

	users := []struct {
		id, name string
		genres   []string
	}{
		{"alice", "Alice", []string{"scifi"}},
		{"bob", "Bob", []string{"scifi", "drama"}},
		{"carol", "Carol", nil},
	}
	for _, u := range users {
		if err := g.AddUser(u.id, u.name, u.genres); err != nil {
			t.Fatalf("AddUser(%s): %v", u.id, err)
		}
	}
	return g
}

func TestAddDuplicates(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"user", func() error { return g.AddUser("alice", "Alice Again", nil) }},
		{"movie", func() error { return g.AddMovie("m1", "The Matrix", "scifi", 4.7, 1999) }},
		{"genre", func() error { return g.AddGenre("scifi", "Science Fiction") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrDuplicateID) {
				t.Errorf("expected ErrDuplicateID, got %v", err)
			}
		})
	}
}

func TestAddUnknownReferences(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"user with unknown genre", func() error { return g.AddUser("dave", "Dave", []string{"horror"}) }, ErrUnknownReference},
		{"movie with unknown genre", func() error { return g.AddMovie("m9", "Alien", "horror", 4.6, 1979) }, ErrUnknownReference},
		{"rating by unknown user", func() error { return g.AddRating("dave", "m1", 4) }, ErrUnknownUser},
		{"rating of unknown movie", func() error { return g.AddRating("alice", "m9", 4) }, ErrUnknownMovie},
		{"preference for unknown user", func() error { return g.AddGenrePreference("dave", "scifi") }, ErrUnknownUser},
		{"preference for unknown genre", func() error { return g.AddGenrePreference("alice", "horror") }, ErrUnknownReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFailedInsertLeavesNoTrace(t *testing.T) {
	g := testGraph(t)

	if err := g.AddUser("dave", "Dave", []string{"scifi", "horror"}); err == nil {
		t.Fatal("expected error for unknown genre")
	}
	if _, err := g.User("dave"); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("user dave should not exist after failed insert, got %v", err)
	}
	if edges := g.Edges("dave"); len(edges) != 0 {
		t.Errorf("expected no edges for dave, got %d", len(edges))
	}
}

func TestAddRating(t *testing.T) {
	g := testGraph(t)

	if err := g.AddRating("alice", "m1", 5); err != nil {
		t.Fatalf("AddRating: %v", err)
	}
	u, err := g.User("alice")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if u.Ratings["m1"] != 5 {
		t.Errorf("expected rating 5, got %d", u.Ratings["m1"])
	}

	// Re-rating overwrites the map entry and the edge weight, without
	// growing the edge list.
	before := len(g.Edges("alice"))
	if err := g.AddRating("alice", "m1", 2); err != nil {
		t.Fatalf("re-rate: %v", err)
	}
	if u.Ratings["m1"] != 2 {
		t.Errorf("expected rating 2 after re-rate, got %d", u.Ratings["m1"])
	}
	if after := len(g.Edges("alice")); after != before {
		t.Errorf("re-rate changed edge count from %d to %d", before, after)
	}
	for _, e := range g.Edges("alice") {
		if e.Type == EdgeRated && e.To == "m1" && e.Weight != 2 {
			t.Errorf("rated edge weight = %d, want 2", e.Weight)
		}
	}
}

func TestAddRatingRange(t *testing.T) {
	g := testGraph(t)

	for _, rating := range []int{0, -1, 6, 100} {
		if err := g.AddRating("alice", "m1", rating); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("rating %d: expected ErrInvalidRange, got %v", rating, err)
		}
	}
	for rating := RatingMin; rating <= RatingMax; rating++ {
		if err := g.AddRating("alice", "m1", rating); err != nil {
			t.Errorf("rating %d: unexpected error %v", rating, err)
		}
	}
}

func TestGenrePreferenceIdempotent(t *testing.T) {
	g := testGraph(t)

	if err := g.AddGenrePreference("carol", "comedy"); err != nil {
		t.Fatalf("AddGenrePreference: %v", err)
	}
	if err := g.AddGenrePreference("carol", "comedy"); err != nil {
		t.Fatalf("repeat AddGenrePreference: %v", err)
	}
	u, _ := g.User("carol")
	if len(u.PreferredGenres) != 1 {
		t.Errorf("expected 1 preferred genre, got %v", u.PreferredGenres)
	}
	count := 0
	for _, e := range g.Edges("carol") {
		if e.Type == EdgePrefers {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 1 prefers edge, got %d", count)
	}
}

func TestSetGenrePreferencesReplaces(t *testing.T) {
	g := testGraph(t)

	if err := g.SetGenrePreferences("bob", []string{"comedy"}); err != nil {
		t.Fatalf("SetGenrePreferences: %v", err)
	}
	u, _ := g.User("bob")
	if len(u.PreferredGenres) != 1 || u.PreferredGenres[0] != "comedy" {
		t.Errorf("expected [comedy], got %v", u.PreferredGenres)
	}
	for _, e := range g.Edges("bob") {
		if e.Type == EdgePrefers && e.To != "comedy" {
			t.Errorf("stale prefers edge to %s", e.To)
		}
	}

	// An unknown genre in the list must leave the old set intact.
	if err := g.SetGenrePreferences("bob", []string{"drama", "horror"}); !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
	if len(u.PreferredGenres) != 1 || u.PreferredGenres[0] != "comedy" {
		t.Errorf("preferences mutated by failed replace: %v", u.PreferredGenres)
	}
}

func TestMovieBelongsToExactlyOneGenre(t *testing.T) {
	g := testGraph(t)

	for _, movieID := range g.MovieIDs() {
		count := 0
		for _, e := range g.Edges(movieID) {
			if e.Type == EdgeBelongsTo {
				count++
			}
		}
		if count != 1 {
			t.Errorf("movie %s has %d belongs_to edges, want 1", movieID, count)
		}
	}
}

func TestStats(t *testing.T) {
	g := testGraph(t)
	if err := g.AddRating("alice", "m1", 5); err != nil {
		t.Fatal(err)
	}

	s := g.Stats()
	if s.Users != 3 || s.Movies != 4 || s.Genres != 3 {
		t.Errorf("node counts = %d/%d/%d, want 3/4/3", s.Users, s.Movies, s.Genres)
	}
	// 4 belongs_to + 3 prefers (alice 1, bob 2) + 1 rated.
	if s.EdgesByType["belongs_to"] != 4 {
		t.Errorf("belongs_to = %d, want 4", s.EdgesByType["belongs_to"])
	}
	if s.EdgesByType["prefers"] != 3 {
		t.Errorf("prefers = %d, want 3", s.EdgesByType["prefers"])
	}
	if s.EdgesByType["rated"] != 1 {
		t.Errorf("rated = %d, want 1", s.EdgesByType["rated"])
	}
	if s.Edges != 8 {
		t.Errorf("total edges = %d, want 8", s.Edges)
	}
}
