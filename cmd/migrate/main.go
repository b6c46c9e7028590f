package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/osse101/MobMissions_Go/internal/config"
	"github.com/osse101/MobMissions_Go/internal/database"
	"github.com/osse101/MobMissions_Go/migrations"
)

const usage = `Usage: migrate [flags] <command> [args]

Commands:
  up                   Apply all pending migrations
  up-to VERSION        Apply migrations up to VERSION
  down                 Roll back the most recent migration
  down-to VERSION      Roll back to VERSION
  redo                 Roll back and re-apply the most recent migration
  status               Print the status of every migration
  version              Print the current schema version
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	dsn := flag.String("dsn", "", "PostgreSQL connection string (defaults to the DB_* environment)")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *dsn, flag.Arg(0), flag.Args()[1:]); err != nil {
		slog.Error("Migration failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, args []string) error {
	if dsn == "" {
		_ = godotenv.Load()
		// Only the DB_* values matter here, so the API key check is skipped
		var cfg config.Config
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("%s: %w", config.ErrMsgParseEnv, err)
		}
		dsn = cfg.DBConnString()
	}

	pool, err := database.NewPool(ctx, dsn, 1, time.Minute, time.Hour)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(database.MigrationsDialect); err != nil {
		return err
	}
	return goose.RunContext(ctx, command, db, ".", args...)
}
