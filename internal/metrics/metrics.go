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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Mission Metrics
var (
	MissionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionsStarted,
			Help: HelpTextMissionsStarted,
		},
		[]string{LabelType},
	)

	MissionAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionAttempts,
			Help: HelpTextMissionAttempts,
		},
		[]string{LabelType, LabelOutcome},
	)

	MissionSuccessChance = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameMissionSuccessChance,
			Help:    HelpTextMissionSuccessChance,
			Buckets: SuccessChanceBuckets,
		},
		[]string{LabelType},
	)

	MissionSpecialEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionSpecialEvents,
			Help: HelpTextMissionSpecialEvents,
		},
		[]string{LabelType, LabelEvent},
	)

	MissionRewardsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionRewardsClaimed,
			Help: HelpTextMissionRewardsClaimed,
		},
		[]string{LabelType},
	)

	MissionMoneyAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMissionMoneyAwarded,
			Help: HelpTextMissionMoneyAwarded,
		},
	)

	MissionCategoryBonus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionCategoryBonus,
			Help: HelpTextMissionCategoryBonus,
		},
		[]string{LabelType},
	)
)
