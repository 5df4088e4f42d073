package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "shufflestat"
)

var (
	ChartBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "chart", "build_duration_seconds"),
		Help:    "Duration of chart model builds in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"mode"})
	ChartCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "chart", "cache_total"),
		Help: "Chart model cache lookups by result",
	}, []string{"result"})
	Ingest = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "ingest", "total"),
		Help: "Ingested payloads by kind",
	}, []string{"kind"})
	SnapshotObservations = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "snapshot", "observations"),
		Help: "Number of distinct (position, element) pairs in the current snapshot",
	}, []string{})
)
