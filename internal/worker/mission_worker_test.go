package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/testing/leaktest"
)

type fakeCompleter struct {
	mu         sync.Mutex
	inProgress []domain.Mission
	loadErr    error
	// results are consumed per mission in order; an exhausted list means success
	results map[uuid.UUID][]error
	calls   map[uuid.UUID]int
}

func newFakeCompleter(missions ...domain.Mission) *fakeCompleter {
	return &fakeCompleter{
		inProgress: missions,
		results:    make(map[uuid.UUID][]error),
		calls:      make(map[uuid.UUID]int),
	}
}

func (f *fakeCompleter) CompleteMission(ctx context.Context, missionID uuid.UUID) (*domain.MissionOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[missionID]++
	if queued := f.results[missionID]; len(queued) > 0 {
		f.results[missionID] = queued[1:]
		if queued[0] != nil {
			return nil, queued[0]
		}
	}
	return &domain.MissionOutcome{Success: true}, nil
}

func (f *fakeCompleter) GetInProgress(ctx context.Context) ([]domain.Mission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inProgress, f.loadErr
}

func (f *fakeCompleter) callCount(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func runningMission(deadline time.Time) domain.Mission {
	return domain.Mission{
		ID:     uuid.New(),
		Key:    "collect-debt",
		Status: domain.MissionStatusInProgress,
		Progress: &domain.MissionProgress{
			StartedAt: deadline.Add(-time.Minute),
			Deadline:  deadline,
		},
	}
}

func testWorkerConfig() MissionWorkerConfig {
	return MissionWorkerConfig{Workers: 2, QueueSize: 16, JobTimeout: time.Second}
}

func TestMissionWorker_Start_SchedulesInProgress(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	overdue := runningMission(time.Now().Add(-time.Minute))
	soon := runningMission(time.Now().Add(30 * time.Millisecond))
	later := runningMission(time.Now().Add(time.Hour))
	noProgress := domain.Mission{ID: uuid.New(), Status: domain.MissionStatusInProgress}
	svc := newFakeCompleter(overdue, soon, later, noProgress)

	w := NewMissionWorker(svc, testWorkerConfig())
	require.NoError(t, w.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return svc.callCount(overdue.ID) == 1 && svc.callCount(soon.ID) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, svc.callCount(later.ID))
	assert.Equal(t, 0, svc.callCount(noProgress.ID))
	assert.Equal(t, 1, w.pending())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, 0, w.pending())
	checker.Check(0)
}

func TestMissionWorker_Start_LoadError(t *testing.T) {
	svc := newFakeCompleter()
	svc.loadErr = errors.New("connection refused")

	w := NewMissionWorker(svc, testWorkerConfig())
	err := w.Start(context.Background())

	assert.EqualError(t, err, "connection refused")
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestMissionWorker_SchedulesOnMissionStarted(t *testing.T) {
	svc := newFakeCompleter()
	bus := event.NewMemoryBus()

	w := NewMissionWorker(svc, testWorkerConfig())
	w.Subscribe(bus)
	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Shutdown(context.Background()) }()

	m := runningMission(time.Now().Add(20 * time.Millisecond))
	require.NoError(t, bus.Publish(context.Background(), event.NewMissionStartedEvent(&m)))

	assert.Eventually(t, func() bool { return svc.callCount(m.ID) == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestMissionWorker_IgnoresUnreadablePayload(t *testing.T) {
	svc := newFakeCompleter()
	bus := event.NewMemoryBus()

	w := NewMissionWorker(svc, testWorkerConfig())
	w.Subscribe(bus)
	defer func() { _ = w.Shutdown(context.Background()) }()

	tests := []struct {
		name    string
		payload interface{}
	}{
		{"not an object", "garbage"},
		{"bad mission id", event.MissionStartedPayloadV1{MissionID: "not-a-uuid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bus.Publish(context.Background(), event.Event{Type: event.MissionStarted, Payload: tt.payload})
			assert.NoError(t, err)
			assert.Equal(t, 0, w.pending())
		})
	}
}

func TestMissionWorker_Complete_ErrorHandling(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"success", nil, false},
		{"already settled", domain.ErrInvalidTransition, false},
		{"lost race", domain.ErrMissionStateChanged, false},
		{"deleted", domain.ErrMissionNotFound, false},
		{"storage failure", domain.ErrDatabaseError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := newFakeCompleter()
			svc.results[id] = []error{tt.err}
			w := NewMissionWorker(svc, testWorkerConfig())

			err := w.complete(context.Background(), id)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, svc.callCount(id))
			assert.Equal(t, 0, w.pending())
		})
	}
}

func TestMissionWorker_NotReadyIsRetried(t *testing.T) {
	m := runningMission(time.Now())
	svc := newFakeCompleter(m)
	svc.results[m.ID] = []error{domain.ErrMissionNotReady}

	w := NewMissionWorker(svc, testWorkerConfig())
	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Shutdown(context.Background()) }()

	assert.Eventually(t, func() bool { return svc.callCount(m.ID) == 2 }, NotReadyRetryDelay+2*time.Second, 10*time.Millisecond)
}

func TestMissionWorker_ShutdownCancelsPending(t *testing.T) {
	m := runningMission(time.Now().Add(50 * time.Millisecond))
	svc := newFakeCompleter(m)

	w := NewMissionWorker(svc, testWorkerConfig())
	require.NoError(t, w.Start(context.Background()))
	require.Equal(t, 1, w.pending())

	require.NoError(t, w.Shutdown(context.Background()))
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, 0, svc.callCount(m.ID))
	assert.False(t, w.schedule(m.ID, 0, func() {}))
	// Second shutdown is a no-op
	assert.NoError(t, w.Shutdown(context.Background()))
}

func TestMissionWorker_SweepJob_ReschedulesUntracked(t *testing.T) {
	tracked := runningMission(time.Now().Add(time.Hour))
	svc := newFakeCompleter(tracked)

	w := NewMissionWorker(svc, testWorkerConfig())
	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Shutdown(context.Background()) }()
	require.Equal(t, 1, w.pending())

	// A mission the worker never saw, for example one whose completion was dropped
	untracked := runningMission(time.Now().Add(time.Hour))
	svc.mu.Lock()
	svc.inProgress = append(svc.inProgress, untracked)
	svc.mu.Unlock()

	require.NoError(t, w.SweepJob().Process(context.Background()))

	assert.Equal(t, 2, w.pending())
	assert.True(t, w.isScheduled(untracked.ID))
}

func TestMissionWorker_SweepJob_LoadError(t *testing.T) {
	svc := newFakeCompleter()
	svc.loadErr = errors.New("connection refused")
	w := NewMissionWorker(svc, testWorkerConfig())

	assert.Error(t, w.SweepJob().Process(context.Background()))
}
