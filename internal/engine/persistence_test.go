// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package engine

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/graph"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/store"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata")

	src := testEngine(t)
	if err := src.AddUserRating("u3", "m1", 2); err != nil {
		t.Fatalf("AddUserRating: %v", err)
	}
	if err := src.SaveUserData(path); err != nil {
		t.Fatalf("SaveUserData: %v", err)
	}

	// A fresh engine with the same catalog but no users.
	dst, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := dst.InitializeSampleData(); err != nil {
		t.Fatalf("InitializeSampleData: %v", err)
	}
	// Loading over the sample users must overwrite, not duplicate.
	if err := dst.LoadUserData(path); err != nil {
		t.Fatalf("LoadUserData: %v", err)
	}

	srcReport, err := src.AnalyzeUserBehavior("u3")
	if err != nil {
		t.Fatal(err)
	}
	dstReport, err := dst.AnalyzeUserBehavior("u3")
	if err != nil {
		t.Fatal(err)
	}
	if srcReport.TotalRatings != dstReport.TotalRatings {
		t.Errorf("ratings = %d, want %d", dstReport.TotalRatings, srcReport.TotalRatings)
	}
	if srcReport.AverageRating != dstReport.AverageRating {
		t.Errorf("average = %v, want %v", dstReport.AverageRating, srcReport.AverageRating)
	}
	if !reflect.DeepEqual(srcReport.PreferredGenres, dstReport.PreferredGenres) {
		t.Errorf("preferences = %v, want %v", dstReport.PreferredGenres, srcReport.PreferredGenres)
	}
	srcStats, dstStats := src.Stats(), dst.Stats()
	if srcStats.Users != dstStats.Users || srcStats.Edges != dstStats.Edges {
		t.Errorf("stats mismatch after load: %+v vs %+v", srcStats, dstStats)
	}
}

func TestLoadRejectsBadSnapshotWithoutPartialRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata")

	// One valid record sorting ahead of one that references a movie the
	// catalog does not have. Neither may end up in the graph.
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	snap := &store.Snapshot{Users: []store.UserRecord{
		{ID: "u200", Name: "Eve", Ratings: map[string]int{"m1": 4}},
		{ID: "u900", Name: "Mallory", Ratings: map[string]int{"m99": 5}},
	}}
	if err := st.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	e := testEngine(t)
	before := e.Stats()
	if err := e.LoadUserData(path); !errors.Is(err, graph.ErrUnknownMovie) {
		t.Fatalf("expected ErrUnknownMovie, got %v", err)
	}
	if _, err := e.AnalyzeUserBehavior("u200"); !errors.Is(err, graph.ErrUnknownUser) {
		t.Errorf("valid record from rejected snapshot was applied: %v", err)
	}
	if after := e.Stats(); after.Users != before.Users || after.Edges != before.Edges {
		t.Errorf("graph changed by rejected snapshot: %+v vs %+v", after, before)
	}
}

func TestLoadFromEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")

	// Opening and closing creates the store without writing a snapshot.
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	e := testEngine(t)
	if err := e.LoadUserData(path); !errors.Is(err, store.ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}
