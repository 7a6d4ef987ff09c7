// Package metrics defines the process-wide Prometheus collectors. All
// collectors are package-level and registered once via Init; callers record
// through the helper functions rather than touching collectors directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	JobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copymill_jobs_total",
			Help: "Jobs reaching a terminal status",
		},
		[]string{"status"},
	)
	JobsInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "copymill_jobs_inflight",
			Help: "Jobs currently being processed by this pod",
		},
	)
	JobDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "copymill_job_duration_seconds",
			Help:    "Wall-clock duration of completed jobs",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 1800},
		},
	)
	AgentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "copymill_agent_duration_seconds",
			Help:    "Duration of individual agent executions",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"agent"},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copymill_llm_requests_total",
			Help: "LLM completion requests by provider, model, and outcome",
		},
		[]string{"provider", "model", "status"},
	)
	LLMTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copymill_llm_tokens_total",
			Help: "Tokens consumed by provider, model, and kind (prompt/completion)",
		},
		[]string{"provider", "model", "kind"},
	)
	LLMCostTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copymill_llm_cost_usd_total",
			Help: "Estimated LLM spend in USD by provider and model",
		},
		[]string{"provider", "model"},
	)
	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "copymill_llm_request_duration_seconds",
			Help:    "LLM request duration including retries",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)
)

// Init registers all collectors with the default registry. Call once at
// startup; a second call panics like any double MustRegister.
func Init() {
	prometheus.MustRegister(
		JobsTotal,
		JobsInflight,
		JobDuration,
		AgentDuration,
		LLMRequestsTotal,
		LLMTokensTotal,
		LLMCostTotal,
		LLMRequestDuration,
	)
}

// JobStarted marks a job claimed by this pod.
func JobStarted() {
	JobsInflight.Inc()
}

// JobFinished records a terminal transition and the job's total duration.
func JobFinished(status string, duration time.Duration) {
	JobsInflight.Dec()
	JobsTotal.WithLabelValues(status).Inc()
	JobDuration.Observe(duration.Seconds())
}

// ObserveAgent records one agent execution.
func ObserveAgent(agent string, duration time.Duration) {
	AgentDuration.WithLabelValues(agent).Observe(duration.Seconds())
}

// ObserveLLMRequest records one completion round trip.
func ObserveLLMRequest(provider, model, status string, duration time.Duration) {
	LLMRequestsTotal.WithLabelValues(provider, model, status).Inc()
	LLMRequestDuration.WithLabelValues(provider, model).Observe(duration.Seconds())
}

// ObserveLLMUsage records token consumption and estimated cost.
func ObserveLLMUsage(provider, model string, promptTokens, completionTokens int, costUSD float64) {
	LLMTokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
	LLMTokensTotal.WithLabelValues(provider, model, "completion").Add(float64(completionTokens))
	if costUSD > 0 {
		LLMCostTotal.WithLabelValues(provider, model).Add(costUSD)
	}
}
