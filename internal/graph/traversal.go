// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package graph

import (
	"fmt"
	"sort"
)

// BFS walks the graph breadth-first from start, visiting nodes at most
// maxDepth edges away, and returns node ids in discovery order. The start
// node is the first element; BFS(start, 0) returns just the start node.
// Neighbors at equal depth are visited in ascending id order so the
// result is deterministic.
func (g *Graph) BFS(start string, maxDepth int) ([]string, error) {
	if !g.hasNode(start) {
		return nil, fmt.Errorf("bfs from %q: %w", start, ErrUnknownReference)
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("bfs depth %d: %w", maxDepth, ErrInvalidRange)
	}

	type item struct {
		id    string
		depth int
	}
	visited := map[string]bool{start: true}
	order := []string{start}
	queue := []item{{id: start, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth == maxDepth {
			continue
		}
		for _, next := range g.neighbors(cur.id) {
			if visited[next] {
				continue
			}
			visited[next] = true
			order = append(order, next)
			queue = append(queue, item{id: next, depth: cur.depth + 1})
		}
	}
	return order, nil
}

// pathDepth bounds how far a justification path may reach. Six hops cover
// user -> movie -> user -> movie chains and user -> genre -> movie detours.
const pathDepth = 6

// RecommendationPath returns the shortest edge path from a user to a
// movie, as node ids including both endpoints. An empty slice means no
// path exists within the depth bound.
func (g *Graph) RecommendationPath(userID, movieID string) ([]string, error) {
	if _, ok := g.users[userID]; !ok {
		return nil, fmt.Errorf("path from %q: %w", userID, ErrUnknownUser)
	}
	if _, ok := g.movies[movieID]; !ok {
		return nil, fmt.Errorf("path to %q: %w", movieID, ErrUnknownMovie)
	}

	type item struct {
		id    string
		depth int
	}
	parent := map[string]string{userID: ""}
	queue := []item{{id: userID, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.id == movieID {
			var path []string
			for id := movieID; id != ""; id = parent[id] {
				path = append(path, id)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, nil
		}
		if cur.depth == pathDepth {
			continue
		}
		for _, next := range g.neighbors(cur.id) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur.id
			queue = append(queue, item{id: next, depth: cur.depth + 1})
		}
	}
	return []string{}, nil
}

// neighbors returns the ids adjacent to a node in ascending order. Edges
// are stored directed but traversal treats them as undirected, so a movie
// is adjacent both to its genre and to the users who rated it.
func (g *Graph) neighbors(id string) []string {
	set := make(map[string]bool)
	for _, e := range g.adjacency[id] {
		set[e.To] = true
	}
	for from, edges := range g.adjacency {
		for _, e := range edges {
			if e.To == id {
				set[from] = true
			}
		}
	}
	delete(set, id)
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
