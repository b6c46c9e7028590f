package mission

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MobMissions_Go/internal/event"
)

// MockCooldownService
type MockCooldownService struct {
	mock.Mock
}

func (m *MockCooldownService) CheckCooldown(ctx context.Context, characterID, action string, window time.Duration) (bool, time.Duration, error) {
	args := m.Called(ctx, characterID, action, window)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockCooldownService) RecordUse(ctx context.Context, characterID, action string, at time.Time) error {
	args := m.Called(ctx, characterID, action, at)
	return args.Error(0)
}

// recordingBus keeps every published event in order
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(eventType event.Type, handler event.Handler) {}

func (b *recordingBus) Types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]event.Type, 0, len(b.events))
	for _, evt := range b.events {
		types = append(types, evt.Type)
	}
	return types
}

func (b *recordingBus) Last() event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.events[len(b.events)-1]
}
