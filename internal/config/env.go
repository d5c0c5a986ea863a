// Package config reads the game's settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

// Environment variables read by Game.
const (
	EnvSeed       = "INVADERS_SEED"
	EnvLives      = "INVADERS_LIVES"
	EnvAlienSpeed = "INVADERS_ALIEN_SPEED"
)

// getEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if it is unset or empty. A malformed value is an error.
func GetEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// GetEnvInt64 is GetEnvInt for 64-bit integers.
func GetEnvInt64(key string, fallback int64) (int64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// GetEnvFloat is GetEnvInt for floats.
func GetEnvFloat(key string, fallback float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// Game returns the default game configuration with environment overrides
// applied, and the RNG seed to play with (defaultSeed unless INVADERS_SEED is
// set). The result is validated.
func Game(defaultSeed int64) (invaders.Config, int64, error) {
	cfg := invaders.DefaultConfig()
	seed, err := GetEnvInt64(EnvSeed, defaultSeed)
	if err != nil {
		return cfg, 0, err
	}
	if cfg.Lives, err = GetEnvInt(EnvLives, cfg.Lives); err != nil {
		return cfg, 0, err
	}
	if cfg.AlienSpeed, err = GetEnvFloat(EnvAlienSpeed, cfg.AlienSpeed); err != nil {
		return cfg, 0, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, 0, err
	}
	return cfg, seed, nil
}
