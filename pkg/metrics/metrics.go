// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// InquiriesTotal tracks inquiry records created, by channel.
	InquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Total inquiry records created",
		},
		[]string{"channel"},
	)

	// SheetSyncTotal tracks spreadsheet sync attempts by outcome.
	SheetSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_sync_total",
			Help: "Total spreadsheet sync attempts",
		},
		[]string{"result"},
	)

	// SheetSyncDuration tracks spreadsheet sync latency.
	SheetSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sheet_sync_duration_seconds",
			Help:    "Spreadsheet sync request duration",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// SheetSyncInFlight tracks whether a sync request is currently in flight.
	SheetSyncInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sheet_sync_in_flight",
			Help: "Spreadsheet sync requests currently in flight",
		},
	)

	// LLMCallsTotal tracks LLM adapter calls.
	LLMCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_calls_total",
			Help: "Total LLM adapter calls",
		},
		[]string{"provider", "operation", "status"},
	)

	// LLMCallDuration tracks LLM call duration.
	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_duration_seconds",
			Help:    "LLM adapter call duration",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "operation"},
	)

	// NotificationsTotal tracks manager notifications published.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total manager notifications published",
		},
		[]string{"status"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordSheetSync records the outcome of a spreadsheet sync attempt.
func RecordSheetSync(result string, duration float64) {
	SheetSyncTotal.WithLabelValues(result).Inc()
	SheetSyncDuration.Observe(duration)
}

// RecordLLMCall records the outcome of an LLM adapter call.
func RecordLLMCall(provider, operation, status string, duration float64) {
	LLMCallsTotal.WithLabelValues(provider, operation, status).Inc()
	LLMCallDuration.WithLabelValues(provider, operation).Observe(duration)
}
