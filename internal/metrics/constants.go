package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Mission metric names
const (
	MetricNameMissionsStarted       = "missions_started_total"
	MetricNameMissionAttempts       = "mission_attempts_total"
	MetricNameMissionSuccessChance  = "mission_success_chance_percent"
	MetricNameMissionSpecialEvents  = "mission_special_events_total"
	MetricNameMissionRewardsClaimed = "mission_rewards_collected_total"
	MetricNameMissionMoneyAwarded   = "mission_money_awarded_total"
	MetricNameMissionCategoryBonus  = "mission_category_bonus_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Mission metric help text
const (
	HelpTextMissionsStarted       = "Total number of missions started"
	HelpTextMissionAttempts       = "Total number of resolved mission attempts"
	HelpTextMissionSuccessChance  = "Success chance of resolved mission attempts"
	HelpTextMissionSpecialEvents  = "Total number of special events triggered"
	HelpTextMissionRewardsClaimed = "Total number of mission reward collections"
	HelpTextMissionMoneyAwarded   = "Total money awarded by mission rewards"
	HelpTextMissionCategoryBonus  = "Total number of collections boosted by a category bonus"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelEvent   = "event"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SuccessChanceBuckets spans the clamped [5, 95] chance range
var SuccessChanceBuckets = []float64{5, 15, 25, 35, 45, 55, 65, 75, 85, 95}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnreadable = "Event payload could not be decoded"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)

// unmatchedRoute labels requests no route matched so unknown paths cannot grow label cardinality
const unmatchedRoute = "unmatched"
