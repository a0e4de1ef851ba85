// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package engine

import (
	"fmt"
	"time"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/graph"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/store"
)

// SaveUserData writes all users, their preferences, and their ratings to
// the Badger store at path. The store is opened for the duration of the
// call and closed before returning, even on error.
func (e *Engine) SaveUserData(path string) error {
	e.mu.RLock()
	snap := e.snapshot()
	e.mu.RUnlock()

	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveSnapshot(snap); err != nil {
		return err
	}
	e.log.Info().Str("path", path).Int("users", len(snap.Users)).Msg("user data saved")
	return nil
}

// LoadUserData restores user data from the Badger store at path. Users
// are upserted: existing users get their name, preferences, and ratings
// replaced; new users are created. Movies and genres referenced by the
// snapshot must already exist in the graph.
func (e *Engine) LoadUserData(path string) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.LoadSnapshot()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.restore(snap); err != nil {
		return err
	}
	e.log.Info().Str("path", path).Int("users", len(snap.Users)).Msg("user data loaded")
	return nil
}

// snapshot captures user state. Caller holds at least the read lock.
func (e *Engine) snapshot() *store.Snapshot {
	snap := &store.Snapshot{SavedAt: time.Now().UTC()}
	for _, userID := range e.graph.UserIDs() {
		u, err := e.graph.User(userID)
		if err != nil {
			continue
		}
		rec := store.UserRecord{
			ID:              u.ID,
			Name:            u.Name,
			PreferredGenres: append([]string(nil), u.PreferredGenres...),
			Ratings:         make(map[string]int, len(u.Ratings)),
		}
		for movieID, rating := range u.Ratings {
			rec.Ratings[movieID] = rating
		}
		snap.Users = append(snap.Users, rec)
	}
	return snap
}

// restore applies a snapshot. Every record is validated before any is
// applied so a bad snapshot leaves the graph untouched. Caller holds
// the write lock.
func (e *Engine) restore(snap *store.Snapshot) error {
	for _, rec := range snap.Users {
		for _, genreID := range rec.PreferredGenres {
			if _, err := e.graph.Genre(genreID); err != nil {
				return fmt.Errorf("restore preferences of %q: %w", rec.ID, err)
			}
		}
		for movieID, rating := range rec.Ratings {
			if _, err := e.graph.Movie(movieID); err != nil {
				return fmt.Errorf("restore rating %q/%q: %w", rec.ID, movieID, err)
			}
			if rating < graph.RatingMin || rating > graph.RatingMax {
				return fmt.Errorf("restore rating %q/%q: rating %d: %w",
					rec.ID, movieID, rating, graph.ErrInvalidRange)
			}
		}
	}

	for _, rec := range snap.Users {
		if _, err := e.graph.User(rec.ID); err != nil {
			if err := e.graph.AddUser(rec.ID, rec.Name, nil); err != nil {
				return fmt.Errorf("restore user %q: %w", rec.ID, err)
			}
		}
		if err := e.graph.SetGenrePreferences(rec.ID, rec.PreferredGenres); err != nil {
			return fmt.Errorf("restore preferences of %q: %w", rec.ID, err)
		}
		for movieID, rating := range rec.Ratings {
			if err := e.graph.AddRating(rec.ID, movieID, rating); err != nil {
				return fmt.Errorf("restore rating %q/%q: %w", rec.ID, movieID, err)
			}
		}
	}
	return nil
}
