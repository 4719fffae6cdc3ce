// Package metrics exposes Prometheus collectors for the crawl run.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesFetchedTotal      *prometheus.CounterVec
	fetchErrorsTotal       prometheus.Counter
	pagesAcceptedTotal     *prometheus.CounterVec
	pipelineDropsTotal     *prometheus.CounterVec
	frontierRejectedTotal  *prometheus.CounterVec
	frontierPendingGauge   prometheus.Gauge
	activeWorkersGauge     prometheus.Gauge
	rateLimitDelaySeconds  *prometheus.HistogramVec
	fetchDurationSeconds   prometheus.Histogram

	once sync.Once
)

func init() {
	Init()
}

// Init initializes the Prometheus collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		pagesFetchedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crawler_pages_fetched_total",
				Help: "Total pages fetched, labeled by HTTP status class.",
			},
			[]string{"status"},
		)

		fetchErrorsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crawler_fetch_errors_total",
				Help: "Total fetch attempts that produced no usable response.",
			},
		)

		pagesAcceptedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crawler_pages_accepted_total",
				Help: "Total pages accepted by the pipeline, labeled by language.",
			},
			[]string{"language"},
		)

		pipelineDropsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crawler_pipeline_drops_total",
				Help: "Total records dropped by the pipeline, labeled by stage.",
			},
			[]string{"stage"},
		)

		frontierRejectedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crawler_frontier_rejected_total",
				Help: "Total candidate links rejected by the frontier, labeled by reason.",
			},
			[]string{"reason"},
		)

		frontierPendingGauge = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "crawler_frontier_pending",
				Help: "Number of fetch requests currently queued in the frontier.",
			},
		)

		activeWorkersGauge = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "crawler_active_workers",
				Help: "Number of workers currently processing a response.",
			},
		)

		rateLimitDelaySeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crawler_rate_limit_delay_seconds",
				Help:    "Histogram of politeness delays, labeled by domain.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"domain"},
		)

		fetchDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crawler_fetch_duration_seconds",
				Help:    "Histogram of page fetch latencies.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15},
			},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveFetch records a completed fetch with its status class and latency.
func ObserveFetch(statusClass string, duration time.Duration) {
	pagesFetchedTotal.WithLabelValues(statusClass).Inc()
	fetchDurationSeconds.Observe(duration.Seconds())
}

// ObserveFetchError counts a fetch that produced no usable response.
func ObserveFetchError() {
	fetchErrorsTotal.Inc()
}

// ObserveAccepted counts a record that cleared the pipeline.
func ObserveAccepted(language string) {
	pagesAcceptedTotal.WithLabelValues(language).Inc()
}

// ObservePipelineDrop counts a record dropped at the given stage.
func ObservePipelineDrop(stage string) {
	pipelineDropsTotal.WithLabelValues(stage).Inc()
}

// ObserveFrontierRejection counts a candidate link rejected for reason.
func ObserveFrontierRejection(reason string) {
	frontierRejectedTotal.WithLabelValues(reason).Inc()
}

// SetFrontierPending updates the queued-request gauge.
func SetFrontierPending(n int) {
	frontierPendingGauge.Set(float64(n))
}

// IncActiveWorkers increments the active workers gauge.
func IncActiveWorkers() {
	activeWorkersGauge.Inc()
}

// DecActiveWorkers decrements the active workers gauge.
func DecActiveWorkers() {
	activeWorkersGauge.Dec()
}

// ObserveRateLimitDelay records the duration of a politeness wait.
func ObserveRateLimitDelay(domain string, duration time.Duration) {
	rateLimitDelaySeconds.WithLabelValues(domain).Observe(duration.Seconds())
}
