// Package metrics exposes Prometheus instrumentation for the pipeline
// and queue. All collectors are registered on the default registry and
// served by the API's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsClaimed counts executor passes started, labelled by the
	// run's pre-claim status (pending or paused).
	RunsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hadron_runs_claimed_total",
		Help: "Executor passes started, by pre-claim run status.",
	}, []string{"previous_status"})

	// RunsFinished counts how executor passes ended.
	RunsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hadron_runs_finished_total",
		Help: "Executor passes finished, by resulting run status.",
	}, []string{"status"})

	// RunsPaused counts pause transitions by reason.
	RunsPaused = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hadron_runs_paused_total",
		Help: "Pause transitions, by pause reason.",
	}, []string{"reason"})

	// StageDuration observes wall-clock seconds per pipeline stage.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hadron_stage_duration_seconds",
		Help:    "Wall-clock duration of pipeline stage executions.",
		Buckets: []float64{1, 5, 15, 60, 180, 600, 1800},
	}, []string{"stage"})

	// AgentCostUSD accumulates model spend across all runs.
	AgentCostUSD = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hadron_agent_cost_usd_total",
		Help: "Accumulated model cost in USD across all runs.",
	})

	// AgentTokens accumulates token usage by direction (input/output).
	AgentTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hadron_agent_tokens_total",
		Help: "Accumulated model token usage.",
	}, []string{"direction"})

	// EventsAppended counts events written to the persistent stream.
	EventsAppended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hadron_events_appended_total",
		Help: "Events appended to the persistent event stream.",
	})

	// OrphansRecovered counts runs re-queued by orphan detection.
	OrphansRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hadron_orphans_recovered_total",
		Help: "Runs re-queued after their worker stopped heartbeating.",
	})
)

// RecordAgentUsage adds one invocation's usage to the cost metrics.
func RecordAgentUsage(costUSD float64, inputTokens, outputTokens int64) {
	AgentCostUSD.Add(costUSD)
	AgentTokens.WithLabelValues("input").Add(float64(inputTokens))
	AgentTokens.WithLabelValues("output").Add(float64(outputTokens))
}
