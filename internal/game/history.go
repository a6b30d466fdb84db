package game

import "github.com/lgbarn/chessmatch-go/internal/chess"

// HistoryEntry records one played move.
type HistoryEntry struct {
	Move     chess.Move
	Piece    chess.Piece // the mover as it stood before the move
	Captured chess.Piece // Empty variant when nothing was taken
	Notation string      // generated SAN including any check suffix
	Outcome  Outcome

	before chess.BoardState
}

// IsCapture reports whether the move took a piece.
func (e HistoryEntry) IsCapture() bool {
	return !e.Captured.IsEmpty()
}

// resetsClock reports whether the move resets the halfmove clock.
func (e HistoryEntry) resetsClock() bool {
	return e.Piece.Kind == chess.Pawn || e.IsCapture()
}
