package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "sitebuilder"

var (
	metricsOnce sync.Once

	sectionsRendered     *prometheus.CounterVec
	sectionsSkipped      *prometheus.CounterVec
	pageFallbacks        *prometheus.CounterVec
	pageSaves            *prometheus.CounterVec
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDurations *prometheus.HistogramVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		sectionsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "sections_rendered_total",
			Help:      "Sections rendered, by type",
		}, []string{"type"})

		sectionsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "sections_skipped_total",
			Help:      "Sections omitted from output, by reason",
		}, []string{"reason"})

		pageFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "page_fallbacks_total",
			Help:      "Views served from static fallback content",
		}, []string{"view", "reason"})

		pageSaves = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "page_saves_total",
			Help:      "Page saves, by outcome",
		}, []string{"status"})

		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by route and status",
		}, []string{"method", "route", "status"})

		httpRequestDurations = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"})
	})
}

func SectionRendered(sectionType string) {
	initMetrics()
	sectionsRendered.WithLabelValues(sectionType).Inc()
}

// SectionSkipped counts a section left out of the output. Reasons are "unknown" and "panic".
func SectionSkipped(reason string) {
	initMetrics()
	sectionsSkipped.WithLabelValues(reason).Inc()
}

func PageFallback(view, reason string) {
	initMetrics()
	pageFallbacks.WithLabelValues(view, reason).Inc()
}

// PageSaved records the outcome of a save: "ok", "conflict" or "error".
func PageSaved(status string) {
	initMetrics()
	pageSaves.WithLabelValues(status).Inc()
}

func ObserveRequest(method, route string, status int, took time.Duration) {
	initMetrics()
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDurations.WithLabelValues(method, route).Observe(took.Seconds())
}

// SkippedCount reads the current skip counter for a reason. Tests use it to observe diagnostics.
func SkippedCount(reason string) float64 {
	initMetrics()
	return counterValue(sectionsSkipped.WithLabelValues(reason))
}

// FallbackCount reads the current fallback counter for a view and reason.
func FallbackCount(view, reason string) float64 {
	initMetrics()
	return counterValue(pageFallbacks.WithLabelValues(view, reason))
}

func counterValue(counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}
