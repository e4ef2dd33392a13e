package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
	"golang.org/x/time/rate"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Security
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:4200,http://localhost:8080"`

	// Rate Limiting (WebSocket upgrades per IP)
	RateLimitWS      float64 `env:"RATE_LIMIT_WS" envDefault:"5"`
	RateLimitWSBurst int     `env:"RATE_LIMIT_WS_BURST" envDefault:"10"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"` // Options: debug, info, silent, off

	// WebSocket
	MaxFrameSize int64 `env:"MAX_FRAME_SIZE" envDefault:"8192"`

	// Chat
	MaxHistorySize      int  `env:"MAX_HISTORY_SIZE" envDefault:"0"` // 0 keeps everything
	RecordSystemNotices bool `env:"RECORD_SYSTEM_NOTICES" envDefault:"true"`
}

// LoadFromEnv parses configuration from environment variables, applying
// defaults for anything unset
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WSLimit returns the WebSocket upgrade rate as a rate.Limit
func (c *Config) WSLimit() rate.Limit {
	return rate.Limit(c.RateLimitWS)
}

// Silent reports whether logging is switched off
func (c *Config) Silent() bool {
	return c.LogLevel == "silent" || c.LogLevel == "off"
}

// Debug reports whether per-frame diagnostics are enabled
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func (c *Config) validate() error {
	if c.RateLimitWS <= 0 {
		return fmt.Errorf("RATE_LIMIT_WS must be positive, got %v", c.RateLimitWS)
	}
	if c.RateLimitWSBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_WS_BURST must be positive, got %d", c.RateLimitWSBurst)
	}
	if c.MaxFrameSize < domain.MinFrameSize {
		return fmt.Errorf("MAX_FRAME_SIZE must be at least %d, got %d", domain.MinFrameSize, c.MaxFrameSize)
	}
	if c.MaxHistorySize < 0 {
		return fmt.Errorf("MAX_HISTORY_SIZE must not be negative, got %d", c.MaxHistorySize)
	}
	return nil
}
