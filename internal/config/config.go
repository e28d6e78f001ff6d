// Package config holds process-wide tunables for the dungeon engine.
//
// Values are environment-driven with sane defaults, following the
// os.Getenv-plus-fallback idiom used throughout the HTTP surface this
// package's consumers are modeled on.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config collects every tunable the core needs at process start.
type Config struct {
	// PartyActionTimeout is how long the dispatcher waits for every party
	// member to submit an action before auto-defaulting stragglers to Defend.
	PartyActionTimeout time.Duration

	// IdleTimeout is how long a session may sit with no dispatched action
	// before the idle sweep expires it.
	IdleTimeout time.Duration

	// RenderWorkers is the size of the blocking-capable PNG rasterisation
	// pool (at least 1 per core, per the concurrency model in §5).
	RenderWorkers int

	// RenderQueueSize bounds how many render jobs may be queued or running
	// at once; further submissions block until a slot frees or their
	// context ends.
	RenderQueueSize int

	// LogLevel is the slog level name ("debug", "info", "warn", "error").
	LogLevel string

	// DefaultScale is the PNG scale factor used when a render request omits
	// ?scale=.
	DefaultScale float64

	// MinScale/MaxScale bound the accepted scale factor, per §4.7.
	MinScale float64
	MaxScale float64
}

// Default returns the built-in tunables, overridden by environment
// variables where present.
func Default() Config {
	cfg := Config{
		PartyActionTimeout: 60 * time.Second,
		IdleTimeout:        30 * time.Minute,
		RenderWorkers:      4,
		RenderQueueSize:    64,
		LogLevel:           "info",
		DefaultScale:       1.0,
		MinScale:           0.5,
		MaxScale:           3.0,
	}

	if v := os.Getenv("CARDCRAWL_PARTY_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PartyActionTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("CARDCRAWL_IDLE_TIMEOUT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IdleTimeout = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("CARDCRAWL_RENDER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RenderWorkers = n
		}
	}
	if v := os.Getenv("CARDCRAWL_RENDER_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RenderQueueSize = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
