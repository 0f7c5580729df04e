package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed at /metrics.
var Registry = prometheus.NewRegistry()

var (
	analysisStartedTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "analysis_started_total",
		Help: "Total analyses submitted to the analysis API",
	})
	analysisCompletedTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "analysis_completed_total",
		Help: "Total analyses completed",
	})
	analysisFailedTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_failed_total",
		Help: "Total analyses failed, by reason",
	}, []string{"reason"})
	analysisDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_ms",
		Help:    "Analysis duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	})
	exportsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "report_exports_total",
		Help: "Report exports, by status",
	}, []string{"status"})
	uploadsRejectedTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "uploads_rejected_total",
		Help: "Uploads rejected by local validation",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStartedTotal.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Inc()
}

// IncAnalysisFailed increments the failed counter for reason.
func IncAnalysisFailed(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	analysisFailedTotal.WithLabelValues(reason).Inc()
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// IncExport counts an export attempt ("ok", "failed", "archive_failed").
func IncExport(status string) {
	exportsTotal.WithLabelValues(status).Inc()
}

func IncUploadRejected() {
	uploadsRejectedTotal.Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry}))
}
