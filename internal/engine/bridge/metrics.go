package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Replacement results recorded by reverseReplacements.
const (
	resultSuccess   = "success"
	resultError     = "error"
	resultReentrant = "reentrant"
	resultClosed    = "closed"
)

var (
	// forwardTranslations counts buffer edits translated into snapshots.
	forwardTranslations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textbridge_forward_translations_total",
		Help: "Total buffer edits translated into snapshot changes",
	})

	// suppressedEdits counts buffer edits ignored because a replay caused them.
	suppressedEdits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textbridge_suppressed_edits_total",
		Help: "Total buffer edits suppressed by the re-entrancy guard",
	})

	// reverseReplacements counts ReplaceWith calls by result.
	reverseReplacements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textbridge_reverse_replacements_total",
		Help: "Total snapshot replacements by result",
	}, []string{"result"})

	// reverseChanges tracks the number of changes replayed per replacement.
	reverseChanges = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "textbridge_reverse_changes",
		Help:    "Number of changes replayed per snapshot replacement",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
	})

	// reverseDuration tracks replacement latency.
	reverseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "textbridge_reverse_duration_seconds",
		Help:    "Snapshot replacement duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
	})
)
