package config

import (
	"fmt"
	"time"

	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/config"
)

// Config holds the full runtime configuration, populated from environment
// variables.
type Config struct {
	API      APIConfig
	Redis    RedisConfig
	Snapshot SnapshotConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// APIConfig configures the storefront backend client.
type APIConfig struct {
	BaseURL        string        `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`
	Timeout        time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	MaxRetries     int           `env:"API_MAX_RETRIES" envDefault:"2"`
	BreakerEnabled bool          `env:"API_BREAKER_ENABLED" envDefault:"true"`
}

// RedisConfig configures the snapshot backend. An empty address selects
// in-memory snapshot slots instead of Redis.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SnapshotConfig controls persisted snapshot naming and retention.
type SnapshotConfig struct {
	Namespace string        `env:"SNAPSHOT_NAMESPACE" envDefault:"shopsync"`
	TTL       time.Duration `env:"SNAPSHOT_TTL" envDefault:"720h"`
	SessionID string        `env:"SESSION_ID" envDefault:""`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.API.Timeout)
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("API_MAX_RETRIES must not be negative, got %d", c.API.MaxRetries)
	}
	if c.Snapshot.TTL <= 0 {
		return fmt.Errorf("SNAPSHOT_TTL must be positive, got %s", c.Snapshot.TTL)
	}
	if c.Snapshot.Namespace == "" {
		return fmt.Errorf("SNAPSHOT_NAMESPACE must not be empty")
	}
	return nil
}
