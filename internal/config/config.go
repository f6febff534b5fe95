// Package config provides configuration for checkers games and analysis.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=game summaries, 2=every move
	Verbosity int

	Search *SearchConfig
	Game   *GameConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that game records and boards are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}
