// Package engine - environment-driven configuration.
package engine

import (
	"errors"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/admix/model"
)

// Config validation errors.
var (
	ErrInvalidNearestK = errors.New("engine: nearest_k must be at least max_order")
	ErrInvalidMaxOrder = errors.New("engine: max_order must be between 2 and 6")
	ErrInvalidWorkers  = errors.New("engine: workers must be non-negative")
	ErrInvalidTopN     = errors.New("engine: top_n must be positive")
)

// Config holds the engine's tunables. All fields are read from ADMIX_*
// environment variables by FromEnv; DefaultConfig gives the same values
// without touching the environment.
//
// NearestK – pool size of the nearest-K auto-selection (ADMIX_NEAREST_K).
// MaxOrder – largest model order in the default order set (ADMIX_MAX_ORDER).
// Workers  – solver goroutines per order; 0 means GOMAXPROCS (ADMIX_WORKERS).
// TopN     – per-side truncation of differential rankings (ADMIX_TOP_N).
// RCond    – SVD rank cutoff forwarded to the solver (ADMIX_RCOND).
type Config struct {
	NearestK int     `split_words:"true" default:"25"`
	MaxOrder int     `split_words:"true" default:"6"`
	Workers  int     `default:"0"`
	TopN     int     `split_words:"true" default:"15"`
	RCond    float64 `default:"1e-15"`
}

// DefaultConfig returns the canonical engine configuration.
func DefaultConfig() Config {
	return Config{
		NearestK: 25,
		MaxOrder: model.DefaultMaxOrder,
		Workers:  0,
		TopN:     15,
		RCond:    1e-15,
	}
}

// FromEnv reads the configuration from ADMIX_* environment variables and
// validates it. Unset variables fall back to the struct defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("admix", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the internal consistency of the configuration and returns
// the first violated sentinel.
func (c Config) Validate() error {
	if c.MaxOrder < model.MinOrder || c.MaxOrder > model.DefaultMaxOrder {
		return ErrInvalidMaxOrder
	}
	// The auto-selected pool must be able to form the largest default order.
	if c.NearestK < c.MaxOrder {
		return ErrInvalidNearestK
	}
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}
	if c.TopN <= 0 {
		return ErrInvalidTopN
	}

	return nil
}
