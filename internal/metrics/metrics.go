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
)

// Business Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelRarity},
	)

	PartsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePartsAwarded,
			Help: HelpTextPartsAwarded,
		},
		[]string{LabelKind},
	)

	PartsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePartsSold,
			Help: HelpTextPartsSold,
		},
		[]string{LabelKind},
	)

	CreaturesAssembled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreaturesAssembled,
			Help: HelpTextCreaturesAssembled,
		},
		[]string{LabelRarity},
	)

	ListingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCreated,
			Help: HelpTextListingsCreated,
		},
	)

	TradesSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesSettled,
			Help: HelpTextTradesSettled,
		},
	)

	CoinsTraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsTraded,
			Help: HelpTextCoinsTraded,
		},
	)
)
