// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import "errors"

// Sentinel errors returned by graph operations. Callers match with
// errors.Is; call sites wrap them with context via fmt.Errorf and %w.
var (
	// ErrDuplicateID indicates an insert whose id already exists in the
	// target namespace.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrUnknownReference indicates an edge or attribute referring to a
	// node that was never inserted.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrUnknownUser indicates a lookup for a user id that does not exist.
	ErrUnknownUser = errors.New("unknown user")

	// ErrUnknownMovie indicates a lookup for a movie id that does not exist.
	ErrUnknownMovie = errors.New("unknown movie")

	// ErrInvalidRange indicates a rating outside the 1..5 scale.
	ErrInvalidRange = errors.New("rating out of range")
)
