package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"boxing-platform"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres    Postgres
	Redis       Redis
	Security    Security
	Random      Random
	Leaderboard Leaderboard
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Redis holds cache + pub/sub configuration. Addr may be left empty, in
// which case the service runs without the leaderboard cache and the
// fight-event fan-out.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores the operator credential and token signing secret.
// Both empty means mutating endpoints stay open.
type Security struct {
	JWTSecret         string `env:"JWT_SECRET" envDefault:""`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" envDefault:""`
}

// Random configures the external randomness source used by the matchmaker.
type Random struct {
	OrgURL      string        `env:"RANDOM_ORG_URL" envDefault:""`
	HTTPTimeout time.Duration `env:"RANDOM_HTTP_TIMEOUT" envDefault:"5s"`
}

// Leaderboard governs caching of ranking reads.
type Leaderboard struct {
	CacheTTL     time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"30s"`
	DefaultLimit int           `env:"LEADERBOARD_DEFAULT_LIMIT" envDefault:"25"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
