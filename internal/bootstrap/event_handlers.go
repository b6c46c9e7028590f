package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/metrics"
	"github.com/osse101/MobMissions_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus      event.Bus
	MissionWorker *worker.MissionWorker
}

// RegisterEventHandlers subscribes the metrics collector and the mission
// completion worker to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.MissionWorker != nil {
		deps.MissionWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgMissionWorkerSubscribed)
	}

	return nil
}
