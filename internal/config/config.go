package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment
// variables, with sane defaults for local development.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN,required"`
		// Long-poll timeout for getUpdates.
		PollTimeoutSec int `env:"POLL_TIMEOUT_SEC" envDefault:"30"`
		// IANA name of the timezone applied to hydrated API timestamps.
		// Empty keeps them in UTC.
		DefaultTimezone string `env:"DEFAULT_TIMEZONE" envDefault:""`
	}

	// TTL in seconds for init-data expiration (0 disables the check).
	InitDataTTLSec int `env:"INIT_DATA_TTL" envDefault:"86400"`

	// How long cached giveaway events stay addressable by key.
	EventTTLSec int `env:"EVENT_TTL_SEC" envDefault:"604800"`
}

// Load reads .env (when present) and the environment into Config.
func Load() (*Config, error) {
	// A missing .env file is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RedisAddr returns the host:port pair for the Redis connection.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// PollTimeout returns the getUpdates long-poll timeout as a duration.
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.Telegram.PollTimeoutSec) * time.Second
}

// InitDataTTL returns the init-data expiration window as a duration.
func (c *Config) InitDataTTL() time.Duration {
	return time.Duration(c.InitDataTTLSec) * time.Second
}

// EventTTL returns the cached-event expiration window as a duration.
func (c *Config) EventTTL() time.Duration {
	return time.Duration(c.EventTTLSec) * time.Second
}
