// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import (
	"fmt"
	"sort"
)

// collabSimilarityFloor filters out barely-similar users before their
// ratings can influence collaborative scores.
const collabSimilarityFloor = 0.3

// positiveRatingMidpoint splits the 1..5 scale; only ratings strictly
// above it count as endorsements.
const positiveRatingMidpoint = 3

// CollaborativeRecommendations ranks movies liked by users similar to
// userID. A candidate movie's score is the sum over similar users of
// similarity times their rating, counting only ratings above the scale
// midpoint from users at or above the similarity floor. Movies the user
// already rated are excluded. Results are score-descending, at most max,
// ties broken by ascending movie id.
func (g *Graph) CollaborativeRecommendations(userID string, max int) ([]Recommendation, error) {
	u, ok := g.users[userID]
	if !ok {
		return nil, fmt.Errorf("collaborative for %q: %w", userID, ErrUnknownUser)
	}

	scores := make(map[string]float64)
	for _, otherID := range g.UserIDs() {
		if otherID == userID {
			continue
		}
		sim, err := g.UserSimilarity(userID, otherID)
		if err != nil {
			return nil, err
		}
		if sim < collabSimilarityFloor {
			continue
		}
		other := g.users[otherID]
		for movieID, rating := range other.Ratings {
			if rating <= positiveRatingMidpoint {
				continue
			}
			if _, rated := u.Ratings[movieID]; rated {
				continue
			}
			scores[movieID] += sim * float64(rating)
		}
	}
	return g.rankScores(scores, max), nil
}

// ContentRecommendations ranks unrated movies from the user's preferred
// genres by reference rating, newest first on ties. A user with no
// preferences falls back to the global top-rated list, still excluding
// anything they rated.
func (g *Graph) ContentRecommendations(userID string, max int) ([]Recommendation, error) {
	u, ok := g.users[userID]
	if !ok {
		return nil, fmt.Errorf("content for %q: %w", userID, ErrUnknownUser)
	}

	preferred := make(map[string]bool, len(u.PreferredGenres))
	for _, genreID := range u.PreferredGenres {
		preferred[genreID] = true
	}

	candidates := make([]*Movie, 0)
	for _, movieID := range g.MovieIDs() {
		if _, rated := u.Ratings[movieID]; rated {
			continue
		}
		m := g.movies[movieID]
		if len(preferred) == 0 || preferred[m.Genre] {
			candidates = append(candidates, m)
		}
	}
	sortMoviesByRating(candidates)
	return moviesToRecommendations(candidates, max), nil
}

// HybridRecommendations blends collaborative and content rankings. Each
// list's scores are min-max normalized to [0, 1] before weighting, so the
// two strategies contribute on the same scale regardless of their raw
// score magnitudes. Weights are used as given; validation is the caller's
// concern.
func (g *Graph) HybridRecommendations(userID string, collabWeight, contentWeight float64, max int) ([]Recommendation, error) {
	collab, err := g.CollaborativeRecommendations(userID, len(g.movies))
	if err != nil {
		return nil, err
	}
	content, err := g.ContentRecommendations(userID, len(g.movies))
	if err != nil {
		return nil, err
	}

	combined := make(map[string]float64)
	for movieID, score := range normalize(collab) {
		combined[movieID] += collabWeight * score
	}
	for movieID, score := range normalize(content) {
		combined[movieID] += contentWeight * score
	}
	for movieID := range combined {
		combined[movieID] = roundScore(combined[movieID])
	}
	return g.rankScores(combined, max), nil
}

// TopRatedMovies returns up to count movies by reference rating, newest
// first on ties.
func (g *Graph) TopRatedMovies(count int) []Recommendation {
	all := make([]*Movie, 0, len(g.movies))
	for _, movieID := range g.MovieIDs() {
		all = append(all, g.movies[movieID])
	}
	sortMoviesByRating(all)
	return moviesToRecommendations(all, count)
}

// PopularMoviesByGenre returns up to count movies of one genre by
// reference rating.
func (g *Graph) PopularMoviesByGenre(genreID string, count int) ([]Recommendation, error) {
	if _, ok := g.genres[genreID]; !ok {
		return nil, fmt.Errorf("popular in %q: %w", genreID, ErrUnknownReference)
	}
	matched := make([]*Movie, 0)
	for _, movieID := range g.MovieIDs() {
		if m := g.movies[movieID]; m.Genre == genreID {
			matched = append(matched, m)
		}
	}
	sortMoviesByRating(matched)
	return moviesToRecommendations(matched, count), nil
}

// rankScores turns a score map into an ordered, capped recommendation
// list: score descending, movie id ascending on ties.
func (g *Graph) rankScores(scores map[string]float64, max int) []Recommendation {
	out := make([]Recommendation, 0, len(scores))
	for movieID, score := range scores {
		rec := Recommendation{MovieID: movieID, Score: score}
		if m, ok := g.movies[movieID]; ok {
			rec.Title = m.Title
			rec.Genre = m.Genre
			rec.Rating = m.Rating
			rec.Year = m.Year
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].MovieID < out[j].MovieID
	})
	if max >= 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// normalize min-max scales recommendation scores to [0, 1]. When every
// score is equal, all map to 0.5 so the list still contributes to a blend.
func normalize(recs []Recommendation) map[string]float64 {
	out := make(map[string]float64, len(recs))
	if len(recs) == 0 {
		return out
	}
	min, max := recs[0].Score, recs[0].Score
	for _, r := range recs[1:] {
		if r.Score < min {
			min = r.Score
		}
		if r.Score > max {
			max = r.Score
		}
	}
	span := max - min
	for _, r := range recs {
		if span == 0 {
			out[r.MovieID] = 0.5
			continue
		}
		out[r.MovieID] = (r.Score - min) / span
	}
	return out
}

func sortMoviesByRating(movies []*Movie) {
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].Rating != movies[j].Rating {
			return movies[i].Rating > movies[j].Rating
		}
		if movies[i].Year != movies[j].Year {
			return movies[i].Year > movies[j].Year
		}
		return movies[i].ID < movies[j].ID
	})
}

func moviesToRecommendations(movies []*Movie, max int) []Recommendation {
	if max >= 0 && len(movies) > max {
		movies = movies[:max]
	}
	out := make([]Recommendation, 0, len(movies))
	for _, m := range movies {
		out = append(out, Recommendation{
			MovieID: m.ID,
			Title:   m.Title,
			Genre:   m.Genre,
			Rating:  m.Rating,
			Year:    m.Year,
			Score:   m.Rating,
		})
	}
	return out
}
