package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)
	bus.Subscribe(Type("other"), handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	ran := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		ran = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, ran, "a failing handler does not stop the others")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: "nobody"}))
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: map[string]interface{}{"source": "worker"}}
	assert.Equal(t, "worker", evt.GetMetadataValue("source"))
	assert.Nil(t, evt.GetMetadataValue("missing"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}

func testMission() *domain.Mission {
	return &domain.Mission{
		ID:          uuid.New(),
		CharacterID: uuid.New(),
		Key:         "collect-debt",
		Type:        domain.MissionTypeCombat,
		Status:      domain.MissionStatusInProgress,
		Progress: &domain.MissionProgress{
			Deadline: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			Crew:     []domain.CrewAssignment{{CrewMemberID: uuid.New()}, {CrewMemberID: uuid.New()}},
		},
	}
}

func TestNewMissionStartedEvent(t *testing.T) {
	m := testMission()

	evt := NewMissionStartedEvent(m)

	assert.Equal(t, MissionStarted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	payload, err := DecodePayload[MissionStartedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, m.ID.String(), payload.MissionID)
	assert.Equal(t, "combat", payload.MissionType)
	assert.Equal(t, 2, payload.CrewSize)
	assert.Equal(t, m.Progress.Deadline, payload.Deadline)
}

func TestNewMissionResolvedEvent(t *testing.T) {
	m := testMission()

	success := NewMissionResolvedEvent(m, &domain.MissionOutcome{Success: true, SuccessChance: 62, Roll: 10})
	assert.Equal(t, MissionCompleted, success.Type)

	failure := NewMissionResolvedEvent(m, &domain.MissionOutcome{
		Success:      false,
		Roll:         99,
		SpecialEvent: &domain.SpecialEvent{Name: "Ambush"},
		Result:       domain.RewardResult{HealthPenalty: 20},
	})
	assert.Equal(t, MissionFailed, failure.Type)

	payload, err := DecodePayload[MissionResolvedPayloadV1](failure.Payload)
	require.NoError(t, err)
	assert.False(t, payload.Success)
	assert.Equal(t, "Ambush", payload.SpecialEvent)
	assert.Equal(t, 20, payload.HealthPenalty)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"mission_id":     "abc",
		"money":          float64(1500),
		"category_bonus": true,
	}

	payload, err := DecodePayload[MissionRewardsCollectedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", payload.MissionID)
	assert.Equal(t, 1500, payload.Money)
	assert.True(t, payload.CategoryBonus)

	_, err = DecodePayload[MissionRewardsCollectedPayloadV1]("not an object")
	assert.Error(t, err)
}
