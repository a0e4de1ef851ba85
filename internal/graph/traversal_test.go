// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import (
	"errors"
	"reflect"
	"testing"
)

func TestBFSDepthZero(t *testing.T) {
	g := testGraph(t)
	got, err := g.BFS("alice", 0)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []string{"alice"}; !reflect.DeepEqual(got, want) {
		t.Errorf("BFS depth 0 = %v, want %v", got, want)
	}
}

func TestBFSOrder(t *testing.T) {
	g := testGraph(t)
	rate(t, g, "alice", map[string]int{"m1": 5})

	// Depth 1 from alice: her rated movie and preferred genre, id order.
	got, err := g.BFS("alice", 1)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []string{"alice", "m1", "scifi"}; !reflect.DeepEqual(got, want) {
		t.Errorf("BFS depth 1 = %v, want %v", got, want)
	}

	// Depth 2 adds the genre's movies and its other fans; the start node
	// is never revisited.
	got, err = g.BFS("alice", 2)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if got[0] != "alice" {
		t.Errorf("start node not first: %v", got)
	}
	seen := make(map[string]int)
	for _, id := range got {
		seen[id]++
		if seen[id] > 1 {
			t.Errorf("node %s visited twice in %v", id, got)
		}
	}
	if seen["m2"] == 0 {
		t.Errorf("expected m2 at depth 2, got %v", got)
	}
}

func TestBFSUnknownStart(t *testing.T) {
	g := testGraph(t)
	if _, err := g.BFS("nobody", 3); !errors.Is(err, ErrUnknownReference) {
		t.Errorf("expected ErrUnknownReference, got %v", err)
	}
	if _, err := g.BFS("alice", -1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRecommendationPath(t *testing.T) {
	g := testGraph(t)
	rate(t, g, "alice", map[string]int{"m1": 5})
	rate(t, g, "bob", map[string]int{"m1": 4, "m3": 5})

	tests := []struct {
		name    string
		user    string
		movie   string
		want    []string
		wantErr error
	}{
		{
			name:  "direct rating",
			user:  "alice",
			movie: "m1",
			want:  []string{"alice", "m1"},
		},
		{
			name:  "through a shared rater",
			user:  "alice",
			movie: "m3",
			want:  []string{"alice", "m1", "bob", "m3"},
		},
		{
			name:  "unreachable movie",
			user:  "carol",
			movie: "m1",
			want:  []string{},
		},
		{
			name:    "unknown user",
			user:    "dave",
			movie:   "m1",
			wantErr: ErrUnknownUser,
		},
		{
			name:    "unknown movie",
			user:    "alice",
			movie:   "m9",
			wantErr: ErrUnknownMovie,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.RecommendationPath(tt.user, tt.movie)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RecommendationPath: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("path = %v, want %v", got, tt.want)
			}
		})
	}
}
