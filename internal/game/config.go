package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/overworld/internal/mode"
)

// Environment variables read by FromEnv.
const (
	EnvSeed     = "OVERWORLD_SEED"
	EnvTickRate = "OVERWORLD_TICK_RATE"
	EnvMap      = "OVERWORLD_MAP"
	EnvFade     = "OVERWORLD_FADE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible encounters.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickRate is the number of simulation ticks per second.
	TickRate int

	// MapName selects the level layout from the embedded data directory.
	MapName string

	// FadeDuration is the total length of a mode transition. Zero switches
	// modes on the next tick without a fade.
	FadeDuration time.Duration

	// FadeAsset is the sheet the transition overlay is drawn from.
	FadeAsset mode.Asset
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		TickRate:     30,
		MapName:      "overworld",
		FadeDuration: 600 * time.Millisecond,
		FadeAsset:    "textures/ascii.png",
	}
}

// TickInterval returns the wall-clock time between ticks.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// FromEnv returns DefaultConfig overridden by any OVERWORLD_* variables set
// in the environment.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvTickRate, err)
		}
		if rate <= 0 {
			return cfg, fmt.Errorf("invalid %s: must be positive, got %d", EnvTickRate, rate)
		}
		cfg.TickRate = rate
	}

	if v := os.Getenv(EnvMap); v != "" {
		cfg.MapName = v
	}

	if v := os.Getenv(EnvFade); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvFade, err)
		}
		if d < 0 {
			return cfg, fmt.Errorf("invalid %s: must not be negative, got %v", EnvFade, d)
		}
		cfg.FadeDuration = d
	}

	return cfg, nil
}
