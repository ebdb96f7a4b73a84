// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "navigator_request_duration_seconds",
			Help: "Duration of request processing in seconds",
		},
		[]string{"route"},
	)

	IntentsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_intents_detected_total",
			Help: "Total number of intents detected by the phrase matcher",
		},
		[]string{"intent", "language"},
	)

	TranslationCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_translation_calls_total",
			Help: "Total number of translation bridge calls",
		},
		[]string{"direction", "status"},
	)

	WellnessExchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_wellness_exchanges_total",
			Help: "Total number of wellness dialogue rounds by phase",
		},
		[]string{"phase"},
	)
)
