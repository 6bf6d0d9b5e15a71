// Package metrics define los colectores Prometheus de la aplicación.
// Los colectores son globales; Register los publica en un registry concreto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sunstone"

var (
	// RequestCounter cuenta las peticiones HTTP por método, ruta y status.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration duración de las peticiones HTTP en segundos.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// AutoTagEvaluations evaluaciones del auto-tagging por tipo de evento y resultado (ok|error).
	AutoTagEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "autotag_evaluations_total",
			Help:      "Auto-tag evaluations by event type and result",
		},
		[]string{"event", "result"},
	)

	// AutoTagMutations asignaciones creadas o retiradas por el auto-tagging.
	AutoTagMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "autotag_mutations_total",
			Help:      "Tag assignments created or removed by the auto-tag evaluator",
		},
		[]string{"kind"},
	)

	// SuggestionsEmitted sugerencias devueltas a los dashboards, por tipo.
	SuggestionsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_emitted_total",
			Help:      "Suggestions returned to dashboards by type",
		},
		[]string{"type"},
	)
)

// Register publica todos los colectores en reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		RequestCounter,
		RequestDuration,
		AutoTagEvaluations,
		AutoTagMutations,
		SuggestionsEmitted,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
