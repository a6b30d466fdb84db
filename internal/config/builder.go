package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithShortRepetition enables or disables the short-repetition draw rule.
func (b *ConfigBuilder) WithShortRepetition(enabled bool, lag int) *ConfigBuilder {
	b.cfg.Draw.ShortRepetition = enabled
	b.cfg.Draw.RepetitionLag = lag
	return b
}

// WithNoProgressWindow enables the no-progress draw rule over window plies.
// A window of zero disables the rule.
func (b *ConfigBuilder) WithNoProgressWindow(window int) *ConfigBuilder {
	b.cfg.Draw.NoProgress = window != 0
	b.cfg.Draw.NoProgressWindow = window
	return b
}

// WithInsufficientMaterial enables the insufficient material draw rule.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Draw.InsufficientMaterial = enabled
	return b
}

// WithCoordinates controls rank and file labels on the rendered board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Render.ShowCoordinates = enabled
	return b
}

// WithOutputFile sets the output file writer.
func (b *ConfigBuilder) WithOutputFile(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log file writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
