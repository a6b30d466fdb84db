// Package config provides configuration for chess matches.
package config

import (
	"io"
	"os"
)

// Config holds all settings of a match and the program around it.
type Config struct {
	Verbosity int // 0=nothing, 1=match results, 2=running commentary

	// StartFEN is the starting position. Empty means the standard one.
	StartFEN string

	Draw   *DrawConfig
	Render *RenderConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Draw:       NewDrawConfig(),
		Render:     NewRenderConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Draw != nil {
		if err := c.Draw.Validate(); err != nil {
			return err
		}
	}
	return nil
}
