package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Addr         string
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		MaxBodyBytes: 1 << 20,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes (%d) must be positive: %w", s.MaxBodyBytes, errors.ErrInvalidConfig)
	}
	return nil
}
