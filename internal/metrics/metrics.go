// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package metrics provides Prometheus instrumentation for the chat
// pipeline: API latency, store queries, sentiment tier usage, scoring
// outcomes, and recommendation fusion.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of product store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of product store query errors",
		},
		[]string{"operation"},
	)

	// Sentiment Metrics
	SentimentTierUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_tier_used_total",
			Help: "Messages analyzed per sentiment tier",
		},
		[]string{"tier"},
	)

	// Scoring Metrics
	ScoringOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_outcomes_total",
			Help: "Interest scoring runs per outcome (ok, degraded, fallback)",
		},
		[]string{"outcome"},
	)

	InterestScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interest_score",
			Help:    "Distribution of computed interest scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	// Recommendation Metrics
	RecommendOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_outcomes_total",
			Help: "Recommendation runs per outcome (ok, degraded, fallback)",
		},
		[]string{"outcome"},
	)

	RecommendGeneratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_generator_failures_total",
			Help: "Candidate generator failures by generator name",
		},
		[]string{"generator"},
	)

	RecommendInterestTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_interest_tier_total",
			Help: "Recommendation requests per interest tier",
		},
		[]string{"tier"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreQuery records one store query, counting errors separately.
func RecordStoreQuery(operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordSentimentTier counts one analysis on the given tier.
func RecordSentimentTier(tier string) {
	SentimentTierUsed.WithLabelValues(tier).Inc()
}

// RecordScoring records one scoring run and its resulting score.
func RecordScoring(outcome string, score float64) {
	ScoringOutcomes.WithLabelValues(outcome).Inc()
	InterestScore.Observe(score)
}

// RecordRecommendation records one recommendation run.
func RecordRecommendation(outcome, tier string, failedGenerators []string) {
	RecommendOutcomes.WithLabelValues(outcome).Inc()
	RecommendInterestTier.WithLabelValues(tier).Inc()
	for _, g := range failedGenerators {
		RecommendGeneratorFailures.WithLabelValues(g).Inc()
	}
}
