package main

import (
	"github.com/osse101/MobMissions_Go/internal/config"
	"github.com/osse101/MobMissions_Go/internal/logger"
)

// loggerConfig maps application configuration onto the logger settings.
// Source locations are only added in development.
func loggerConfig(cfg *config.Config) logger.Config {
	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
}
