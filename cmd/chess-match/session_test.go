package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/game"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func runSession(t *testing.T, fen, input string) (*game.Match, string) {
	t.Helper()
	m := testutil.MustNewMatch(t, fen)
	var out bytes.Buffer
	s := newSession(m, strings.NewReader(input), &out)
	if err := s.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	return m, out.String()
}

func TestSession_ScholarsMate(t *testing.T) {
	m, out := runSession(t, "", "e4\ne5\nBc4\nNc6\nQh5\nNf6\nQxf7#\nthis is never read\n")

	testutil.AssertContains(t, out, "Black checkmated, White wins")
	testutil.AssertTrue(t, m.IsOver())
	testutil.AssertEqual(t, len(m.History()), 7)
}

func TestSession_InvalidMoveAndUndo(t *testing.T) {
	m, out := runSession(t, "", "e2e5\ne4\nundo\nundo\n")

	testutil.AssertContains(t, out, "Invalid move!")
	testutil.AssertContains(t, out, "Cannot undo")
	testutil.AssertEqual(t, len(m.History()), 0)
}

func TestSession_Commands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"scores", "scores\n", "White 139, Black 139"},
		{"fen", "fen\n", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"moves", "moves\n", "20 moves:"},
		{"history", "e4\nc5\nNf3\nhistory\n", "1. e4 c5\n2. Nf3\n"},
		{"export", "export\n", " 11  9 10 12 13 10  9 11"},
		{"help", "help\n", "undo, moves"},
		{"quit stops reading", "quit\ne4\n", "White to move> "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := runSession(t, "", tt.input)
			testutil.AssertContains(t, out, tt.want)
		})
	}
}
