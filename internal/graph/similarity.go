// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import (
	"fmt"
	"math"
	"sort"
)

// UserSimilarity computes how alike two users' tastes are, in [0, 1].
//
// Only movies both users rated contribute. The score is one minus the mean
// absolute rating difference divided by the scale span, so identical
// ratings on every common movie yield 1 and maximally opposed ratings
// yield 0. Users with no common movies score 0. The measure is symmetric.
func (g *Graph) UserSimilarity(a, b string) (float64, error) {
	ua, ok := g.users[a]
	if !ok {
		return 0, fmt.Errorf("similarity of %q: %w", a, ErrUnknownUser)
	}
	ub, ok := g.users[b]
	if !ok {
		return 0, fmt.Errorf("similarity of %q: %w", b, ErrUnknownUser)
	}

	var sum float64
	var common int
	for movieID, ra := range ua.Ratings {
		rb, ok := ub.Ratings[movieID]
		if !ok {
			continue
		}
		sum += math.Abs(float64(ra - rb))
		common++
	}
	if common == 0 {
		return 0, nil
	}
	span := float64(RatingMax - RatingMin)
	return 1 - (sum/float64(common))/span, nil
}

// CommonMovies returns the ids of movies rated by both users, ascending.
func (g *Graph) CommonMovies(a, b string) ([]string, error) {
	ua, ok := g.users[a]
	if !ok {
		return nil, fmt.Errorf("common movies of %q: %w", a, ErrUnknownUser)
	}
	ub, ok := g.users[b]
	if !ok {
		return nil, fmt.Errorf("common movies of %q: %w", b, ErrUnknownUser)
	}

	common := make([]string, 0)
	for movieID := range ua.Ratings {
		if _, ok := ub.Ratings[movieID]; ok {
			common = append(common, movieID)
		}
	}
	sort.Strings(common)
	return common, nil
}

// similarUserDepth bounds the BFS neighborhood searched for candidate
// users. Depth four reaches user -> movie -> user -> movie -> user, two
// rating hops away.
const similarUserDepth = 4

// FindSimilarUsers returns users whose similarity to userID is at least
// threshold, most similar first. Candidates come from the BFS neighborhood
// of the user, so users in disconnected components are never compared.
func (g *Graph) FindSimilarUsers(userID string, threshold float64) ([]SimilarUser, error) {
	if _, ok := g.users[userID]; !ok {
		return nil, fmt.Errorf("similar users of %q: %w", userID, ErrUnknownUser)
	}

	visited, err := g.BFS(userID, similarUserDepth)
	if err != nil {
		return nil, err
	}

	out := make([]SimilarUser, 0)
	for _, id := range visited {
		if id == userID {
			continue
		}
		if _, ok := g.users[id]; !ok {
			continue
		}
		sim, err := g.UserSimilarity(userID, id)
		if err != nil {
			return nil, err
		}
		if sim >= threshold {
			out = append(out, SimilarUser{UserID: id, Similarity: sim})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}
