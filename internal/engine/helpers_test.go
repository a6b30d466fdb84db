package engine

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

func mustSetup(t testing.TB, fen string) *Setup {
	t.Helper()
	setup, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return setup
}

func sq(s string) chess.Position {
	return chess.MustParseSquare(s)
}

func mv(from, to string) chess.Move {
	return chess.NewMove(sq(from), sq(to))
}

func positions(pieces []chess.Piece) []chess.Position {
	var out []chess.Position
	for _, p := range pieces {
		out = append(out, p.Pos)
	}
	return out
}
