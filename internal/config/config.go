// Package config provides configuration for the chess gym tools.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity  int // 0=nothing, 1=search results, 2=per-move commentary
	JSONFormat bool
	LineLength int // wrap width for move lists in text output

	Search *SearchConfig
	Server *ServerConfig
	Env    *EnvConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LineLength: 80,
		Search:     NewSearchConfig(),
		Server:     NewServerConfig(),
		Env:        NewEnvConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Env.Validate()
}
