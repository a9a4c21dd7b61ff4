// Package config loads the travelog runtime configuration.
//
// Values come from process environment variables (a `.env` file is
// autoloaded first when present), are decoded into typed structs by koanf
// and checked with go-playground/validator so the service refuses to start
// on incomplete configuration.
//
// Keys use the TRAVELOG_ prefix and "." for nesting:
//
//	TRAVELOG_DATABASE.HOST -> database.host -> Config.Database.Host
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every travelog environment variable carries.
const EnvPrefix = "TRAVELOG_"

// ServiceName tags logs, traces and the New Relic application.
const ServiceName = "travelog"

// DefaultRateLimit is the per-client request rate used when
// server.rate_limit is not configured.
const DefaultRateLimit = 20

// Config is the root configuration object.
//
// Observability is optional; LoadConfig injects DefaultObservabilityConfig
// when it is missing. Integration is optional as a whole: without a Resend
// key the welcome email job is never enqueued.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary describes the runtime environment ("local", "development",
// "production").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is requests per second per client IP. Zero means DefaultRateLimit.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig holds the Redis "host:port" address used by the health check
// and the background job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// IntegrationConfig stores third-party API credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// EmailEnabled reports whether transactional email can be sent.
func (c IntegrationConfig) EmailEnabled() bool {
	return c.ResendAPIKey != ""
}

// EffectiveRateLimit returns the configured rate limit or the default.
func (c ServerConfig) EffectiveRateLimit() float64 {
	if c.RateLimit <= 0 {
		return DefaultRateLimit
	}
	return c.RateLimit
}

// LoadConfig reads the TRAVELOG_ environment into a validated Config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	return fromKoanf(k)
}

// fromKoanf decodes and validates an already populated koanf instance.
func fromKoanf(k *koanf.Koanf) (*Config, error) {
	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Naming is not configurable; telemetry must always group under one service.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
