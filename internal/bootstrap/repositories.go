package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MobMissions_Go/internal/config"
	"github.com/osse101/MobMissions_Go/internal/cooldown"
	"github.com/osse101/MobMissions_Go/internal/database"
	"github.com/osse101/MobMissions_Go/internal/database/postgres"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// Repositories holds the Postgres-backed stores used by the application
type Repositories struct {
	Mission  repository.Mission
	Cooldown cooldown.Service
}

// ConnectDatabase opens the connection pool and, unless disabled, applies
// pending migrations. The pool is closed again if migrating fails.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.DBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if !cfg.AutoMigrate {
		slog.Info(LogMsgSkippingMigrations)
		return pool, nil
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}
	return pool, nil
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool, cfg *config.Config) *Repositories {
	return &Repositories{
		Mission:  postgres.NewMissionRepository(dbPool),
		Cooldown: cooldown.NewPostgresService(dbPool, cooldown.Config{DevMode: cfg.DevMode}),
	}
}
