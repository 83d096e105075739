// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for the feedback service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// Submissions counts submit calls by outcome
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Feedback submissions by outcome (created, updated, invalid, error)",
	}, []string{"outcome"})

	// Resets counts reset calls
	Resets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_resets_total",
		Help: "Number of times all feedback was deleted",
	})

	// StoreDuration measures store calls by operation
	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feedback_store_duration_seconds",
		Help:    "Latency of feedback store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// StoredRecords is the record count observed by the last report or reset
	StoredRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feedback_stored_records",
		Help: "Number of feedback records seen by the most recent report or reset",
	})
)
