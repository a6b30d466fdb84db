// Package testutil provides shared test utilities for the chessmatch-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/game"
)

// QuietConfig returns the default configuration with logging switched off.
func QuietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

// MustNewMatch starts a quiet match from fen, or from the standard position
// when fen is empty. It calls t.Fatal if the position is rejected.
func MustNewMatch(t *testing.T, fen string) *game.Match {
	t.Helper()
	cfg := QuietConfig()
	cfg.StartFEN = fen
	m, err := game.NewMatch(cfg)
	if err != nil {
		t.Fatalf("NewMatch(%q) failed: %v", fen, err)
	}
	return m
}

// MustPlay submits each move in turn (coordinates or SAN) and returns the
// outcome of the last one. It calls t.Fatal on the first rejected move.
func MustPlay(t *testing.T, m *game.Match, moves ...string) game.Outcome {
	t.Helper()
	outcome := game.OutcomeSuccess
	for i, text := range moves {
		var err error
		outcome, err = m.Play(text)
		if err != nil || outcome == game.OutcomeInvalid {
			t.Fatalf("move %d %q: outcome %v, error %v", i+1, text, outcome, err)
		}
	}
	return outcome
}
