// Package config loads toolkit settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all toolkit settings, populated from environment variables.
// CLI flags override individual paths per command.
type Config struct {
	MarkdownPath string `env:"STATION_MD" envDefault:"station-numbers.md"`
	CSVPath      string `env:"STATION_CSV" envDefault:"station_data.csv"`
	SeedDBPath   string `env:"SEED_DB" envDefault:"station_data.db"`

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Optional publisher for downstream dataset consumers.
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"station-data-updates"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MarkdownPath == "" {
		return nil, errors.New("STATION_MD is required")
	}
	if cfg.CSVPath == "" {
		return nil, errors.New("STATION_CSV is required")
	}
	if cfg.SeedDBPath == "" {
		return nil, errors.New("SEED_DB is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is empty")
		}
	}

	return &cfg, nil
}
