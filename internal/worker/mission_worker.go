package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/logger"
)

const missionWorkerName = "mission worker"

// MissionCompleter is the part of the mission service the worker drives
type MissionCompleter interface {
	CompleteMission(ctx context.Context, missionID uuid.UUID) (*domain.MissionOutcome, error)
	GetInProgress(ctx context.Context) ([]domain.Mission, error)
}

// MissionWorkerConfig sizes the completion pool
type MissionWorkerConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

// MissionWorker completes missions when their deadline passes
type MissionWorker struct {
	BaseWorker
	service MissionCompleter
	pool    *Pool
}

// NewMissionWorker creates a new MissionWorker. Zero config values take the defaults.
func NewMissionWorker(service MissionCompleter, cfg MissionWorkerConfig) *MissionWorker {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultCompletionWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultCompletionQueueSize
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultCompletionTimeout
	}
	w := &MissionWorker{
		service: service,
		pool:    NewPool(cfg.Workers, cfg.QueueSize, cfg.JobTimeout),
	}
	w.init()
	return w
}

// Subscribe schedules every mission that starts from now on
func (w *MissionWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.MissionStarted, w.handleMissionStarted)
}

// Start launches the completion pool and schedules the missions already in
// progress. Overdue missions are completed right away.
func (w *MissionWorker) Start(ctx context.Context) error {
	w.pool.Start()

	scheduled, err := w.scheduleInProgress(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgWorkerStarted, "scheduled", scheduled)
	return nil
}

// Enqueue hands a job to the completion pool
func (w *MissionWorker) Enqueue(job Job) bool {
	return w.pool.Enqueue(job)
}

// SweepJob reschedules in-progress missions that have no pending timer, such
// as completions dropped while the queue was full.
func (w *MissionWorker) SweepJob() Job {
	return JobFunc(func(ctx context.Context) error {
		scheduled, err := w.scheduleInProgress(ctx)
		if err != nil {
			return err
		}
		if scheduled > 0 {
			logger.FromContext(ctx).Info(LogMsgSweepRescheduled, "count", scheduled)
		}
		return nil
	})
}

func (w *MissionWorker) scheduleInProgress(ctx context.Context) (int, error) {
	missions, err := w.service.GetInProgress(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToLoadInProgress, "error", err)
		return 0, err
	}

	scheduled := 0
	for i := range missions {
		if missions[i].Progress == nil || w.isScheduled(missions[i].ID) {
			continue
		}
		w.scheduleCompletion(missions[i].ID, missions[i].Progress.Deadline)
		scheduled++
	}
	return scheduled, nil
}

func (w *MissionWorker) handleMissionStarted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.MissionStartedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnreadableStartedPayload, "error", err)
		return nil
	}
	missionID, err := uuid.Parse(payload.MissionID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnreadableStartedPayload, "error", err)
		return nil
	}
	w.scheduleCompletion(missionID, payload.Deadline)
	return nil
}

func (w *MissionWorker) scheduleCompletion(missionID uuid.UUID, deadline time.Time) {
	delay := max(time.Until(deadline), 0)
	logger.FromContext(context.Background()).Debug(LogMsgSchedulingCompletion, "missionID", missionID, "delay", delay)

	w.schedule(missionID, delay, func() {
		w.pool.Enqueue(JobFunc(func(ctx context.Context) error {
			return w.complete(ctx, missionID)
		}))
	})
}

// complete resolves one mission. Missions settled elsewhere are skipped and
// missions that are not quite due are retried shortly.
func (w *MissionWorker) complete(ctx context.Context, missionID uuid.UUID) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCompletingMission, "missionID", missionID)

	_, err := w.service.CompleteMission(ctx, missionID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrMissionStateChanged),
		errors.Is(err, domain.ErrMissionNotFound):
		log.Info(LogMsgMissionAlreadySettled, "missionID", missionID, "reason", err)
		return nil
	case errors.Is(err, domain.ErrMissionNotReady):
		log.Info(LogMsgMissionNotReadyRetrying, "missionID", missionID)
		w.scheduleCompletion(missionID, time.Now().Add(NotReadyRetryDelay))
		return nil
	default:
		log.Error(LogMsgFailedToCompleteMission, "missionID", missionID, "error", err)
		return err
	}
}

// Shutdown cancels pending timers and waits for running completions.
// Missions left in progress are picked up again by the next Start.
func (w *MissionWorker) Shutdown(ctx context.Context) error {
	w.stopTimers(ctx, missionWorkerName)

	done := make(chan struct{})
	go func() {
		w.pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		logger.FromContext(ctx).Info(missionWorkerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(missionWorkerName + " shutdown timeout")
		return ctx.Err()
	}
}
