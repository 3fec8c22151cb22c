package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the collectors of the expander.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geneset_expander",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geneset_expander",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"method", "route"},
	)

	expansions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geneset_expander",
			Subsystem: "engine",
			Name:      "expansions_total",
			Help:      "Total number of expansion runs.",
		},
		[]string{"status"},
	)

	expansionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "geneset_expander",
			Subsystem: "engine",
			Name:      "expansion_duration_seconds",
			Help:      "Duration of an expansion, gene-set loading included.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)

	testedSets = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "geneset_expander",
			Subsystem: "engine",
			Name:      "tested_gene_sets",
			Help:      "Gene sets with a nonzero overlap per expansion.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	enrichedSets = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "geneset_expander",
			Subsystem: "engine",
			Name:      "enriched_gene_sets",
			Help:      "Gene sets passing both thresholds per expansion.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		expansions,
		expansionDuration,
		testedSets,
		enrichedSets,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordHTTP(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordExpansion(err error, tested, enriched int, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	expansions.WithLabelValues(status).Inc()
	expansionDuration.Observe(duration.Seconds())
	if err == nil {
		testedSets.Observe(float64(tested))
		enrichedSets.Observe(float64(enriched))
	}
}
