package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics.
var (
	PipelineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridiron",
			Name:      "pipeline_requests_total",
			Help:      "Total number of chat pipeline requests",
		},
		[]string{"bucket", "outcome"}, // outcome: answered, expert, apology
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gridiron",
			Name:      "generation_request_duration_seconds",
			Help:      "Generation request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "model", "stage"},
	)

	GenerationTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridiron",
			Name:      "generation_tokens_total",
			Help:      "Total generation tokens consumed",
		},
		[]string{"provider", "model", "stage", "type"}, // type: input / output
	)

	GenerationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridiron",
			Name:      "generation_errors_total",
			Help:      "Total generation errors",
		},
		[]string{"provider", "model", "stage"},
	)

	ExemplarLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridiron",
			Name:      "exemplar_lookups_total",
			Help:      "Exemplar index lookups by result",
		},
		[]string{"result"}, // "hit" / "default" / "error"
	)

	GuardTripsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gridiron",
			Name:      "result_guard_trips_total",
			Help:      "Query results rejected for exceeding the token budget",
		},
	)

	ExecutionRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gridiron",
			Name:      "execution_retries_total",
			Help:      "SQL executions retried after a failure",
		},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers Prometheus pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(PipelineRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(GenerationTokensTotal)
	prometheus.MustRegister(GenerationErrorsTotal)
	prometheus.MustRegister(ExemplarLookupsTotal)
	prometheus.MustRegister(GuardTripsTotal)
	prometheus.MustRegister(ExecutionRetriesTotal)
	pipelineMetricsRegistered = true
}
