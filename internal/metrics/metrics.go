package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PanchangamLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePanchangamLookups,
			Help: HelpTextPanchangamLookups,
		},
	)

	AuspiciousSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuspiciousSearches,
			Help: HelpTextAuspiciousSearches,
		},
		[]string{LabelActivity},
	)

	CalendarExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalendarExports,
			Help: HelpTextCalendarExports,
		},
		[]string{LabelKind},
	)

	ScoreRPCCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScoreRPCCalls,
			Help: HelpTextScoreRPCCalls,
		},
		[]string{LabelResult},
	)

	ScoreCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScoreCacheHits,
			Help: HelpTextScoreCacheHits,
		},
	)
)
