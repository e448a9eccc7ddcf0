// Package metrics defines and registers all custom Prometheus metrics for
// the roast API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roastify"

// SignupsTotal counts account creations by outcome.
// Label:
//   - outcome: "created", "duplicate", or "invalid"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RoastsGeneratedTotal counts generated roasts.
// Labels:
//   - source: "ai", "sample", or "error"
//   - style: the requested tone (e.g. "savage")
var RoastsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roasts_generated_total",
		Help:      "Total number of roasts generated, by provenance and style.",
	},
	[]string{"source", "style"},
)

// ReactionsTotal counts reaction clicks by type.
var ReactionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reactions_total",
		Help:      "Total number of roast reactions recorded, by type.",
	},
	[]string{"type"},
)

// PhotosUploadedTotal counts stored photo uploads.
var PhotosUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photos_uploaded_total",
		Help:      "Total number of photos stored.",
	},
)
