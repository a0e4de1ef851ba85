// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Package metrics defines the Prometheus collectors for the service.
// Collectors register themselves on the default registry via promauto;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by route and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linklab",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "linklab",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RecommendationsServed counts recommendation responses by method.
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linklab",
			Name:      "recommendations_served_total",
			Help:      "Recommendation lists served by strategy.",
		},
		[]string{"strategy"},
	)

	// GraphNodes reports current node counts by kind.
	GraphNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "linklab",
			Name:      "graph_nodes",
			Help:      "Graph node count by kind.",
		},
		[]string{"kind"},
	)

	// GraphEdges reports current edge counts by type.
	GraphEdges = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "linklab",
			Name:      "graph_edges",
			Help:      "Graph edge count by type.",
		},
		[]string{"type"},
	)
)

// SetGraphSize updates the node gauges.
func SetGraphSize(users, movies, genres int) {
	GraphNodes.WithLabelValues("user").Set(float64(users))
	GraphNodes.WithLabelValues("movie").Set(float64(movies))
	GraphNodes.WithLabelValues("genre").Set(float64(genres))
}

// SetEdgeCounts updates the edge gauges from a type-to-count map.
func SetEdgeCounts(byType map[string]int) {
	for edgeType, count := range byType {
		GraphEdges.WithLabelValues(edgeType).Set(float64(count))
	}
}
