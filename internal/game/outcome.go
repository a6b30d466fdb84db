// Package game runs a two-player match: it enforces turn order, keeps the
// move and notation histories, reports check, checkmate and draws, and
// supports undo.
package game

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Outcome is the result code of a submitted move. Check and checkmate
// codes name the player who is to move next, i.e. the one in check or
// mated.
type Outcome int

const (
	OutcomeInvalid         Outcome = -1
	OutcomeSuccess         Outcome = 0
	OutcomeCheckWhite      Outcome = 1 // White is in check
	OutcomeCheckBlack      Outcome = 2 // Black is in check
	OutcomeWhiteCheckmated Outcome = 3
	OutcomeBlackCheckmated Outcome = 4
	OutcomeDraw            Outcome = 5
)

// checkOutcome returns the check code for the player in check.
func checkOutcome(p chess.Player) Outcome {
	return OutcomeCheckWhite + Outcome(p)
}

// mateOutcome returns the checkmate code for the mated player.
func mateOutcome(p chess.Player) Outcome {
	return OutcomeWhiteCheckmated + Outcome(p)
}

// IsTerminal reports whether the match ends with this outcome.
func (o Outcome) IsTerminal() bool {
	return o == OutcomeWhiteCheckmated || o == OutcomeBlackCheckmated || o == OutcomeDraw
}

// String returns a human readable description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid move"
	case OutcomeSuccess:
		return "ok"
	case OutcomeCheckWhite:
		return "White in check"
	case OutcomeCheckBlack:
		return "Black in check"
	case OutcomeWhiteCheckmated:
		return "White checkmated, Black wins"
	case OutcomeBlackCheckmated:
		return "Black checkmated, White wins"
	case OutcomeDraw:
		return "draw"
	}
	return "unknown outcome"
}
