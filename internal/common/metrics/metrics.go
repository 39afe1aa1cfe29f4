// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_analyses_completed_total",
			Help: "Total number of business analyses completed",
		},
		[]string{"rating"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "advisor_analysis_duration_seconds",
			Help: "Duration of the analysis pipeline in seconds",
		},
	)

	InsightFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_insight_fallbacks_total",
			Help: "Total number of insight requests answered with fallback text",
		},
		[]string{"reason"},
	)

	ContentGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_content_generated_total",
			Help: "Total number of content items generated by kind",
		},
		[]string{"kind"},
	)

	HistoryAppendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_history_append_errors_total",
			Help: "Total number of failed history appends by store",
		},
		[]string{"store"},
	)
)
