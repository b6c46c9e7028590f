package metrics

import (
	"context"

	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/logger"
)

// EventMetricsCollector subscribes to mission events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all mission events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.MissionStarted,
		event.MissionCompleted,
		event.MissionFailed,
		event.MissionSpecialEvent,
		event.MissionRewardsCollected,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads are
// counted as published and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.MissionStarted:
		var p event.MissionStartedPayloadV1
		if p, err = event.DecodePayload[event.MissionStartedPayloadV1](evt.Payload); err == nil {
			MissionsStarted.WithLabelValues(p.MissionType).Inc()
		}

	case event.MissionCompleted, event.MissionFailed:
		var p event.MissionResolvedPayloadV1
		if p, err = event.DecodePayload[event.MissionResolvedPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeFailure
			if p.Success {
				outcome = OutcomeSuccess
			}
			MissionAttempts.WithLabelValues(p.MissionType, outcome).Inc()
			MissionSuccessChance.WithLabelValues(p.MissionType).Observe(p.SuccessChance)
		}

	case event.MissionSpecialEvent:
		var p event.MissionSpecialEventPayloadV1
		if p, err = event.DecodePayload[event.MissionSpecialEventPayloadV1](evt.Payload); err == nil {
			MissionSpecialEvents.WithLabelValues(p.MissionType, p.EventName).Inc()
		}

	case event.MissionRewardsCollected:
		var p event.MissionRewardsCollectedPayloadV1
		if p, err = event.DecodePayload[event.MissionRewardsCollectedPayloadV1](evt.Payload); err == nil {
			MissionRewardsCollected.WithLabelValues(p.MissionType).Inc()
			if p.Money > 0 {
				MissionMoneyAwarded.Add(float64(p.Money))
			}
			if p.CategoryBonus {
				MissionCategoryBonus.WithLabelValues(p.MissionType).Inc()
			}
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUnreadable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
