package config

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// DefaultNoProgressWindow is the number of notation strings the
// no-progress rule looks back over.
const DefaultNoProgressWindow = 75

// DefaultRepetitionLag is the distance in plies between the moves the
// short-repetition rule compares.
const DefaultRepetitionLag = 2

// DrawConfig holds settings for draw detection.
type DrawConfig struct {
	// ShortRepetition declares a draw when the last move equals the moves
	// RepetitionLag and 2*RepetitionLag plies earlier.
	ShortRepetition bool
	RepetitionLag   int

	// NoProgress declares a draw when none of the last NoProgressWindow
	// notation strings is a piece move or a capture.
	NoProgress       bool
	NoProgressWindow int

	// InsufficientMaterial declares a draw when neither side can mate.
	InsufficientMaterial bool
}

// NewDrawConfig creates a DrawConfig with default values.
func NewDrawConfig() *DrawConfig {
	return &DrawConfig{
		ShortRepetition:  true,
		RepetitionLag:    DefaultRepetitionLag,
		NoProgress:       true,
		NoProgressWindow: DefaultNoProgressWindow,
	}
}

// Validate checks that the draw configuration is valid.
func (d *DrawConfig) Validate() error {
	if d.ShortRepetition && d.RepetitionLag < 1 {
		return fmt.Errorf("repetition lag (%d) must be positive: %w",
			d.RepetitionLag, errors.ErrInvalidConfig)
	}
	if d.NoProgress && d.NoProgressWindow < 1 {
		return fmt.Errorf("no-progress window (%d) must be positive: %w",
			d.NoProgressWindow, errors.ErrInvalidConfig)
	}
	return nil
}
