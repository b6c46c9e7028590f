package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MobMissions_Go/internal/bootstrap"
	"github.com/osse101/MobMissions_Go/internal/config"
	"github.com/osse101/MobMissions_Go/internal/handler"
	"github.com/osse101/MobMissions_Go/internal/mission"
	"github.com/osse101/MobMissions_Go/internal/scheduler"
	"github.com/osse101/MobMissions_Go/internal/server"
	"github.com/osse101/MobMissions_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, loggerConfig(cfg))
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.LoadMissionCatalog(cfg.MissionCatalogPath)
	if err != nil {
		return err
	}

	dbPool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool, cfg)

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	handler.InitValidator()

	missionService := mission.NewService(repos.Mission, publisher, repos.Cooldown, catalog, nil)

	missionWorker := worker.NewMissionWorker(missionService, worker.MissionWorkerConfig{
		Workers:    cfg.CompletionWorkers,
		QueueSize:  cfg.CompletionQueueSize,
		JobTimeout: cfg.CompletionTimeout,
	})
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:      eventBus,
		MissionWorker: missionWorker,
	}); err != nil {
		return err
	}
	if err := missionWorker.Start(ctx); err != nil {
		// Missions already running get another chance on the next restart
		slog.Error("Mission worker could not schedule running missions", "error", err)
	}

	sched := scheduler.New(missionWorker)
	sched.Schedule("mission-sweep", cfg.SweepInterval, missionWorker.SweepJob())

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Detector: server.DetectorConfig{
			Window:            cfg.RateLimitWindow,
			MaxRequestsPerIP:  cfg.MaxRequestsPerIP,
			FailedAuthAlertAt: server.DefaultFailedAuthAlertAt,
		},
		CatalogVersion: catalog.Version,
	}, dbPool, missionService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		MissionWorker:      missionWorker,
		ResilientPublisher: publisher,
	})
	return nil
}
