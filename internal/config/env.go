package config

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// Opponent policies.
const (
	OpponentMinimax = "minimax"
	OpponentRandom  = "random"
)

// EnvConfig holds settings for self-play episodes.
type EnvConfig struct {
	// AgentColor is the player token of the agent side.
	AgentColor string

	// Opponent selects the reply policy: OpponentMinimax or OpponentRandom.
	Opponent string

	// Seed feeds the random opponent and random agent moves.
	Seed int64

	// MaxPlies ends an episode after this many plies (0 = no limit).
	MaxPlies int
}

// NewEnvConfig creates an EnvConfig with default values.
func NewEnvConfig() *EnvConfig {
	return &EnvConfig{
		AgentColor: "WHITE",
		Opponent:   OpponentMinimax,
		Seed:       1,
		MaxPlies:   200,
	}
}

// Validate checks that the environment configuration is valid.
func (e *EnvConfig) Validate() error {
	if e.AgentColor != "WHITE" && e.AgentColor != "BLACK" {
		return fmt.Errorf("agent color %q: %w", e.AgentColor, errors.ErrInvalidConfig)
	}
	if e.Opponent != OpponentMinimax && e.Opponent != OpponentRandom {
		return fmt.Errorf("opponent %q: %w", e.Opponent, errors.ErrInvalidConfig)
	}
	if e.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", e.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
