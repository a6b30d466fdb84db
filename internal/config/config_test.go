package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

// TestDrawConfig_Defaults verifies DrawConfig has the documented defaults
func TestDrawConfig_Defaults(t *testing.T) {
	cfg := NewDrawConfig()

	if !cfg.ShortRepetition {
		t.Error("ShortRepetition should be true by default")
	}
	if cfg.RepetitionLag != 2 {
		t.Errorf("RepetitionLag = %d, want 2", cfg.RepetitionLag)
	}
	if !cfg.NoProgress {
		t.Error("NoProgress should be true by default")
	}
	if cfg.NoProgressWindow != 75 {
		t.Errorf("NoProgressWindow = %d, want 75", cfg.NoProgressWindow)
	}
	if cfg.InsufficientMaterial {
		t.Error("InsufficientMaterial should be false by default")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Draw == nil || cfg.Render == nil {
		t.Fatal("sub-configs should be initialised")
	}
	if !cfg.Render.ShowCoordinates {
		t.Error("ShowCoordinates should be true by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

// TestDrawConfig_Validate verifies draw config validation
func TestDrawConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DrawConfig
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			cfg:     DrawConfig{},
			wantErr: false,
		},
		{
			name:    "defaults",
			cfg:     *NewDrawConfig(),
			wantErr: false,
		},
		{
			name:    "zero window with rule enabled",
			cfg:     DrawConfig{NoProgress: true, NoProgressWindow: 0},
			wantErr: true,
		},
		{
			name:    "negative lag with rule enabled",
			cfg:     DrawConfig{ShortRepetition: true, RepetitionLag: -1},
			wantErr: true,
		},
		{
			name:    "negative lag with rule disabled",
			cfg:     DrawConfig{ShortRepetition: false, RepetitionLag: -1},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithVerbosity(2).
		WithShortRepetition(true, 4).
		WithNoProgressWindow(10).
		WithInsufficientMaterial(true).
		WithCoordinates(false).
		WithOutputFile(&out).
		WithLogFile(&log).
		Build()

	if cfg.StartFEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Draw.RepetitionLag != 4 {
		t.Errorf("RepetitionLag = %d, want 4", cfg.Draw.RepetitionLag)
	}
	if !cfg.Draw.NoProgress || cfg.Draw.NoProgressWindow != 10 {
		t.Errorf("NoProgress = %v/%d, want true/10", cfg.Draw.NoProgress, cfg.Draw.NoProgressWindow)
	}
	if !cfg.Draw.InsufficientMaterial {
		t.Error("InsufficientMaterial should be enabled")
	}
	if cfg.Render.ShowCoordinates {
		t.Error("ShowCoordinates should be disabled")
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("output streams not set")
	}
}

func TestConfigBuilder_DisableNoProgress(t *testing.T) {
	cfg := NewConfigBuilder().WithNoProgressWindow(0).Build()

	if cfg.Draw.NoProgress {
		t.Error("a zero window should disable the no-progress rule")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
