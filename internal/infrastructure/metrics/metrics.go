// Package metrics registers the Prometheus collectors the API exposes on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

var (
	resolvedDays = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "poi_hours_resolved_days_total",
		Help: "Resolved per-day hours by winning layer.",
	}, []string{"provenance"})

	ambiguousOverrides = promauto.NewCounter(prometheus.CounterOpts{
		Name: "poi_hours_ambiguous_overrides_total",
		Help: "Resolutions where more than one override matched the same day.",
	})

	hoursCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "poi_hours_cache_requests_total",
		Help: "Resolved-hours cache lookups by outcome.",
	}, []string{"outcome"})
)

// ObserveResolution records the outcome of one resolver run.
func ObserveResolution(res hours.Resolution) {
	resolvedDays.WithLabelValues(string(res.Provenance)).Inc()
	for _, diag := range res.Diagnostics {
		if diag.Kind == hours.DiagnosticAmbiguousOverride {
			ambiguousOverrides.Inc()
		}
	}
}

// ObserveCacheHit records a resolved-hours cache hit.
func ObserveCacheHit() {
	hoursCacheHits.WithLabelValues("hit").Inc()
}

// ObserveCacheMiss records a resolved-hours cache miss.
func ObserveCacheMiss() {
	hoursCacheHits.WithLabelValues("miss").Inc()
}
