// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package engine

import "fmt"

// Method names accepted by Recommendations.
const (
	MethodCollaborative = "collaborative"
	MethodContent       = "content"
	MethodHybrid        = "hybrid"
)

// Weights holds the hybrid blend. Both components must be non-negative
// and at least one positive.
type Weights struct {
	Collaborative float64 `json:"collaborative" koanf:"collaborative"`
	Content       float64 `json:"content" koanf:"content"`
}

// Validate rejects degenerate blends.
func (w Weights) Validate() error {
	if w.Collaborative < 0 || w.Content < 0 {
		return fmt.Errorf("weights %v/%v: %w", w.Collaborative, w.Content, ErrInvalidWeights)
	}
	if w.Collaborative == 0 && w.Content == 0 {
		return fmt.Errorf("all-zero weights: %w", ErrInvalidWeights)
	}
	return nil
}

// Config controls engine behavior.
type Config struct {
	// DefaultMethod is used when a request names no method.
	DefaultMethod string `koanf:"default_method"`

	// MaxResults caps every recommendation list. Requests asking for
	// more are clamped, not rejected.
	MaxResults int `koanf:"max_results"`

	// SimilarityThreshold is the default cutoff for similar-user queries.
	SimilarityThreshold float64 `koanf:"similarity_threshold"`

	// Weights is the initial hybrid blend; SetWeights changes it at
	// runtime.
	Weights Weights `koanf:"weights"`
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		DefaultMethod:       MethodHybrid,
		MaxResults:          20,
		SimilarityThreshold: 0.5,
		Weights:             Weights{Collaborative: 0.5, Content: 0.5},
	}
}

// Validate checks config consistency.
func (c Config) Validate() error {
	switch c.DefaultMethod {
	case MethodCollaborative, MethodContent, MethodHybrid:
	default:
		return fmt.Errorf("default method %q: %w", c.DefaultMethod, ErrInvalidMethod)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max results must be positive, got %d", c.MaxResults)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be within [0,1], got %v", c.SimilarityThreshold)
	}
	return c.Weights.Validate()
}
