package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/scheduler"
	"github.com/osse101/MobMissions_Go/internal/server"
	"github.com/osse101/MobMissions_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	MissionWorker      *worker.MissionWorker
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop periodic sweeps)
// 3. Mission worker (cancel timers, finish running completions)
// 4. Event publisher (flush pending retries)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.MissionWorker != nil {
		slog.Info(LogMsgShuttingDownWorker)
		if err := components.MissionWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgMissionWorkerFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
