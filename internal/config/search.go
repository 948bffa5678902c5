package config

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// MaxDepth bounds the search depth accepted from users.
const MaxDepth = 8

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the number of plies searched.
	Depth int

	// Workers is the number of goroutines sharing the root actions.
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Workers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside 0..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
