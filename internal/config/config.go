package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// HTTP
	Port             int           `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	APIKey           string        `env:"API_KEY"`
	TrustedProxies   []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxBodyBytes     int64         `env:"MAX_BODY_BYTES" envDefault:"1048576" validate:"gt=0"`
	RateLimitWindow  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m" validate:"gt=0"`
	MaxRequestsPerIP int           `env:"MAX_REQUESTS_PER_IP" envDefault:"1000" validate:"gt=0"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mobmissions"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// Database. DatabaseURL wins over the individual DB_* values when set.
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"mobmissions"`
	DBSSLMode         string        `env:"DB_SSLMODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20" validate:"gt=0"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	AutoMigrate       bool          `env:"AUTO_MIGRATE" envDefault:"true"`

	// Missions
	MissionCatalogPath string `env:"MISSION_CATALOG_PATH" envDefault:"configs/missions/catalog.json"`
	DevMode            bool   `env:"DEV_MODE"`

	// Events
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"gte=0"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Mission completion worker
	CompletionWorkers   int           `env:"COMPLETION_WORKERS" envDefault:"4" validate:"gt=0"`
	CompletionQueueSize int           `env:"COMPLETION_QUEUE_SIZE" envDefault:"256" validate:"gt=0"`
	CompletionTimeout   time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m" validate:"gt=0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s" validate:"gt=0"`
}

// Load loads the configuration from the environment, reading .env first if present
func Load() (*Config, error) {
	// A missing .env is fine, real env vars may be set instead
	_ = godotenv.Load()
	return Parse()
}

// Parse builds and validates a Config from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DBConnString returns the PostgreSQL connection string
func (c *Config) DBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// IsProduction reports whether the configured environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// IsDevelopment reports whether the configured environment is a local one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

var errAPIKeyRequired = errors.New(ErrMsgAPIKeyRequired)
