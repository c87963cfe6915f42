package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "sumstats"
)

var (
	PipelineStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "pipeline", "stage_duration_seconds"),
		Help:    "Duration of a single pipeline stage in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	}, []string{"stage"})
	PipelineRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "pipeline", "rows"),
		Help:    "Number of rows produced by a pipeline stage",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"stage"})
	ViewCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "view_cache", "lookups_total"),
		Help: "View cache lookups by result",
	}, []string{"result"})
	PipelineErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "pipeline", "errors_total"),
		Help: "Pipeline failures by error code",
	}, []string{"code"})
	SourceRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "source", "rows"),
		Help: "Number of rows of the loaded summary statistics table",
	})
	SourceLoadDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "source", "load_duration_seconds"),
		Help: "Duration of the last summary statistics table load in seconds",
	})
)
