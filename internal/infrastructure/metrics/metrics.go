package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeTimeout = "timeout"
	OutcomeSkipped = "skipped"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_commands_total",
			Help: "Total number of shell commands executed, by outcome",
		},
		[]string{"outcome"},
	)

	commandDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "workbench_command_duration_seconds",
			Help:    "Shell command duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	filesWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_files_written_total",
			Help: "Total number of files materialized, by outcome",
		},
		[]string{"outcome"},
	)

	gitOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_git_operations_total",
			Help: "Total number of git clone/pull/push operations, by outcome",
		},
		[]string{"operation", "outcome"},
	)

	gitOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workbench_git_operation_duration_seconds",
			Help:    "Git operation duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"operation"},
	)
)

// CommandExecuted records one executor run that started at start.
func CommandExecuted(outcome string, start time.Time) {
	commandsTotal.WithLabelValues(outcome).Inc()
	commandDuration.Observe(time.Since(start).Seconds())
}

// FileWritten records the outcome of one FileSpec.
func FileWritten(outcome string) {
	filesWrittenTotal.WithLabelValues(outcome).Inc()
}

// GitOperation records one clone, pull or push that started at start.
func GitOperation(operation, outcome string, start time.Time) {
	gitOperationsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome != OutcomeSkipped {
		gitOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
