package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "mission.started")
const (
	// EventTypeMissionStarted is published when a character starts a mission.
	// The worker schedules completion from it.
	EventTypeMissionStarted = "mission.started"

	// EventTypeMissionCompleted is published when an attempt resolves as a success
	EventTypeMissionCompleted = "mission.completed"

	// EventTypeMissionFailed is published when an attempt resolves as a failure
	EventTypeMissionFailed = "mission.failed"

	// EventTypeMissionRewardsCollected is published once rewards are applied
	EventTypeMissionRewardsCollected = "mission.rewards_collected"

	// EventTypeMissionSpecialEvent is published when a special event fires
	EventTypeMissionSpecialEvent = "mission.special_event"
)
