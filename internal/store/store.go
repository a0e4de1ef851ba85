// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Package store persists user data snapshots in BadgerDB. Each user is
// one key under the user/ prefix, with a meta key recording when the
// snapshot was taken. Stores are opened for the duration of one save or
// load and closed again; the engine is the source of truth in between.
package store

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
)

const (
	metaKey    = "snapshot/meta"
	userPrefix = "user/"
)

// ErrNoSnapshot indicates a load from a store that was never saved to.
var ErrNoSnapshot = errors.New("no snapshot present")

// UserRecord is the persisted form of one user.
type UserRecord struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	PreferredGenres []string       `json:"preferred_genres"`
	Ratings         map[string]int `json:"ratings"`
}

// Snapshot is a complete user-data capture.
type Snapshot struct {
	SavedAt time.Time    `json:"saved_at"`
	Users   []UserRecord `json:"users"`
}

type meta struct {
	SavedAt time.Time `json:"saved_at"`
	Users   int       `json:"users"`
}

// Store is an open Badger database. Close releases it.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a store at path.
func Open(path string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store backed by memory only.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot atomically replaces the stored snapshot. Users absent from
// the new snapshot are removed.
func (s *Store) SaveSnapshot(snap *Snapshot) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		// Clear the previous snapshot so deleted users do not linger.
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(userPrefix)})
		var stale [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for _, u := range snap.Users {
			buf, err := json.Marshal(u)
			if err != nil {
				return fmt.Errorf("encode user %q: %w", u.ID, err)
			}
			if err := txn.Set([]byte(userPrefix+u.ID), buf); err != nil {
				return err
			}
		}

		m, err := json.Marshal(meta{SavedAt: snap.SavedAt, Users: len(snap.Users)})
		if err != nil {
			return err
		}
		return txn.Set([]byte(metaKey), m)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot, users in ascending id order.
func (s *Store) LoadSnapshot() (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			var m meta
			if err := json.Unmarshal(val, &m); err != nil {
				return err
			}
			snap.SavedAt = m.SavedAt
			return nil
		}); err != nil {
			return err
		}

		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(userPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var u UserRecord
				if err := json.Unmarshal(val, &u); err != nil {
					return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
				}
				snap.Users = append(snap.Users, u)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return nil, err
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	sort.Slice(snap.Users, func(i, j int) bool { return snap.Users[i].ID < snap.Users[j].ID })
	return snap, nil
}
