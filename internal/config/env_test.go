package config

import (
	"errors"
	"testing"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

func TestGetEnv_Fallback(t *testing.T) {
	t.Setenv("INVADERS_TEST_SET", "x")
	if getEnv("INVADERS_TEST_SET", "y") != "x" {
		t.Fatal("expected the set value")
	}
	if getEnv("INVADERS_TEST_UNSET_KEY", "y") != "y" {
		t.Fatal("expected the fallback")
	}
}

func TestGame_EmptyOverrideKeepsDefault(t *testing.T) {
	t.Setenv(EnvLives, "")
	t.Setenv(EnvSeed, "")
	cfg, seed, err := Game(7)
	if err != nil {
		t.Fatalf("empty values should fall back, got %v", err)
	}
	if seed != 7 || cfg.Lives != invaders.DefaultConfig().Lives {
		t.Fatalf("expected defaults, got seed=%d lives=%d", seed, cfg.Lives)
	}
}

func TestGame_Defaults(t *testing.T) {
	cfg, seed, err := Game(99)
	if err != nil {
		t.Fatal(err)
	}
	if seed != 99 {
		t.Fatalf("expected default seed 99, got %d", seed)
	}
	if cfg != invaders.DefaultConfig() {
		t.Fatal("no overrides set, expected the default config")
	}
}

func TestGame_Overrides(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvLives, "5")
	t.Setenv(EnvAlienSpeed, "0.25")
	cfg, seed, err := Game(1)
	if err != nil {
		t.Fatal(err)
	}
	if seed != 1234 || cfg.Lives != 5 || cfg.AlienSpeed != 0.25 {
		t.Fatalf("overrides not applied: seed=%d lives=%d speed=%.2f", seed, cfg.Lives, cfg.AlienSpeed)
	}
}

func TestGame_BadValues(t *testing.T) {
	t.Setenv(EnvLives, "three")
	if _, _, err := Game(1); err == nil {
		t.Fatal("expected a parse error")
	}

	t.Setenv(EnvLives, "-2")
	_, _, err := Game(1)
	if !errors.Is(err, invaders.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
