package event

import (
	"time"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// Mission event types
const (
	MissionStarted          Type = domain.EventTypeMissionStarted
	MissionCompleted        Type = domain.EventTypeMissionCompleted
	MissionFailed           Type = domain.EventTypeMissionFailed
	MissionRewardsCollected Type = domain.EventTypeMissionRewardsCollected
	MissionSpecialEvent     Type = domain.EventTypeMissionSpecialEvent
)

// MissionStartedPayloadV1 is the typed payload for mission started events
type MissionStartedPayloadV1 struct {
	MissionID   string    `json:"mission_id"`
	CharacterID string    `json:"character_id"`
	MissionKey  string    `json:"mission_key"`
	MissionType string    `json:"mission_type"`
	CrewSize    int       `json:"crew_size"`
	Deadline    time.Time `json:"deadline"`
}

// MissionResolvedPayloadV1 is the typed payload for mission completed and failed events
type MissionResolvedPayloadV1 struct {
	MissionID     string  `json:"mission_id"`
	CharacterID   string  `json:"character_id"`
	MissionKey    string  `json:"mission_key"`
	MissionType   string  `json:"mission_type"`
	Success       bool    `json:"success"`
	SuccessChance float64 `json:"success_chance"`
	Roll          float64 `json:"roll"`
	SpecialEvent  string  `json:"special_event,omitempty"`
	HealthPenalty int     `json:"health_penalty,omitempty"`
	Timestamp     int64   `json:"timestamp"`
}

// MissionSpecialEventPayloadV1 is the typed payload for special event notifications
type MissionSpecialEventPayloadV1 struct {
	MissionID   string `json:"mission_id"`
	CharacterID string `json:"character_id"`
	MissionType string `json:"mission_type"`
	EventName   string `json:"event_name"`
	Effect      string `json:"effect,omitempty"`
}

// MissionRewardsCollectedPayloadV1 is the typed payload for rewards collected events
type MissionRewardsCollectedPayloadV1 struct {
	MissionID     string `json:"mission_id"`
	CharacterID   string `json:"character_id"`
	MissionType   string `json:"mission_type"`
	Money         int    `json:"money"`
	Experience    int    `json:"experience"`
	StreetCred    int    `json:"street_cred"`
	CategoryBonus bool   `json:"category_bonus"`
	Timestamp     int64  `json:"timestamp"`
}

// NewMissionStartedEvent creates a mission started event
func NewMissionStartedEvent(m *domain.Mission) Event {
	payload := MissionStartedPayloadV1{
		MissionID:   m.ID.String(),
		CharacterID: m.CharacterID.String(),
		MissionKey:  m.Key,
		MissionType: string(m.Type),
	}
	if m.Progress != nil {
		payload.CrewSize = len(m.Progress.Crew)
		payload.Deadline = m.Progress.Deadline
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionStarted,
		Payload: payload,
	}
}

// NewMissionResolvedEvent creates a mission completed or failed event depending on the outcome
func NewMissionResolvedEvent(m *domain.Mission, outcome *domain.MissionOutcome) Event {
	eventType := MissionFailed
	if outcome.Success {
		eventType = MissionCompleted
	}

	payload := MissionResolvedPayloadV1{
		MissionID:     m.ID.String(),
		CharacterID:   m.CharacterID.String(),
		MissionKey:    m.Key,
		MissionType:   string(m.Type),
		Success:       outcome.Success,
		SuccessChance: outcome.SuccessChance,
		Roll:          outcome.Roll,
		HealthPenalty: outcome.Result.HealthPenalty,
		Timestamp:     time.Now().Unix(),
	}
	if outcome.SpecialEvent != nil {
		payload.SpecialEvent = outcome.SpecialEvent.Name
	}

	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// NewMissionSpecialEventEvent creates a special event notification
func NewMissionSpecialEventEvent(m *domain.Mission, special *domain.SpecialEvent) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionSpecialEvent,
		Payload: MissionSpecialEventPayloadV1{
			MissionID:   m.ID.String(),
			CharacterID: m.CharacterID.String(),
			MissionType: string(m.Type),
			EventName:   special.Name,
			Effect:      special.Effect,
		},
	}
}

// NewMissionRewardsCollectedEvent creates a rewards collected event
func NewMissionRewardsCollectedEvent(m *domain.Mission, result *domain.RewardResult, categoryBonus bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionRewardsCollected,
		Payload: MissionRewardsCollectedPayloadV1{
			MissionID:     m.ID.String(),
			CharacterID:   m.CharacterID.String(),
			MissionType:   string(m.Type),
			Money:         result.Rewards.Money,
			Experience:    result.Rewards.Experience,
			StreetCred:    result.Rewards.StreetCred + result.Rewards.Reputation,
			CategoryBonus: categoryBonus,
			Timestamp:     time.Now().Unix(),
		},
	}
}
