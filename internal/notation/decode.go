// Package notation reads and writes moves in standard algebraic notation
// (SAN) and in coordinate form.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Castle distinguishes castling notation from ordinary moves.
type Castle int

const (
	NoCastle Castle = iota
	Kingside
	Queenside
)

// Description is the structure of a SAN string before it is matched
// against a position.
type Description struct {
	Castle    Castle
	Kind      chess.Kind
	Dest      chess.Position
	FromFile  int // -1 when not given
	FromRank  int // -1 when not given
	Capture   bool
	Promotion chess.Kind
}

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPiece returns the kind named by an uppercase SAN piece letter.
func isPiece(c byte) chess.Kind {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	case 'P':
		return chess.Pawn
	}
	return chess.Empty
}

// isCapture returns true if c is a capture marker.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isSuffix returns true for check, mate and annotation characters.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// Decode splits a SAN string into its parts: an optional piece letter,
// an optional trailing promotion letter, the destination square, an
// optional capture marker and an optional disambiguating file and rank.
// Malformed text yields an error wrapping errors.ErrUnresolvableNotation.
func Decode(text string) (Description, error) {
	d := Description{Kind: chess.Pawn, FromFile: -1, FromRank: -1}
	fail := func(reason string) (Description, error) {
		return Description{}, fmt.Errorf("%q: %s: %w", text, reason, errors.ErrUnresolvableNotation)
	}

	s := strings.TrimSpace(text)
	for len(s) > 0 && isSuffix(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	if s == "" {
		return fail("empty move")
	}

	switch strings.ReplaceAll(s, "0", "O") {
	case "O-O":
		d.Kind, d.Castle = chess.King, Kingside
		return d, nil
	case "O-O-O":
		d.Kind, d.Castle = chess.King, Queenside
		return d, nil
	}

	if kind := isPiece(s[0]); kind != chess.Empty {
		d.Kind = kind
		s = s[1:]
	}

	if n := len(s); n > 0 {
		if kind := isPiece(s[n-1]); kind.IsPromotionChoice() {
			if d.Kind != chess.Pawn {
				return fail("only pawns promote")
			}
			d.Promotion = kind
			s = strings.TrimSuffix(s[:n-1], "=")
		}
	}

	n := len(s)
	if n < 2 || !isCol(s[n-2]) || !isRank(s[n-1]) {
		return fail("no destination square")
	}
	d.Dest, _ = chess.ParseSquare(s[n-2:])
	s = s[:n-2]

	if n := len(s); n > 0 && isCapture(s[n-1]) {
		d.Capture = true
		s = s[:n-1]
	}

	switch {
	case s == "":
	case len(s) == 1 && isCol(s[0]):
		d.FromFile = int(s[0] - 'a')
	case len(s) == 1 && isRank(s[0]):
		d.FromRank = int(s[0] - '1')
	case len(s) == 2 && isCol(s[0]) && isRank(s[1]):
		d.FromFile = int(s[0] - 'a')
		d.FromRank = int(s[1] - '1')
	default:
		return fail(fmt.Sprintf("unexpected %q", s))
	}

	if d.Kind == chess.Pawn && d.Capture && d.FromFile < 0 {
		return fail("pawn capture without a file")
	}
	return d, nil
}

// Resolve finds the move a description denotes for player. Among the
// player's pieces of the described kind that satisfy the disambiguation,
// the first in inventory order that may legally reach the destination is
// chosen.
func Resolve(board *chess.Board, recent []chess.Move, player chess.Player, d Description) (chess.Move, error) {
	if d.Castle != NoCastle {
		return resolveCastle(board, recent, player, d)
	}

	fromFile := d.FromFile
	if d.Kind == chess.Pawn && fromFile < 0 {
		fromFile = d.Dest.File
	}

	for _, piece := range board.Pieces(player) {
		if piece.Kind != d.Kind {
			continue
		}
		if fromFile >= 0 && piece.Pos.File != fromFile {
			continue
		}
		if d.FromRank >= 0 && piece.Pos.Rank != d.FromRank {
			continue
		}
		if engine.IsLegalMove(board, recent, piece, d.Dest) {
			return chess.Move{From: piece.Pos, To: d.Dest, Promotion: d.Promotion}, nil
		}
	}
	return chess.Move{}, fmt.Errorf("no %v %v can reach %v: %w",
		player, d.Kind, d.Dest, errors.ErrUnresolvableNotation)
}

func resolveCastle(board *chess.Board, recent []chess.Move, player chess.Player, d Description) (chess.Move, error) {
	king := board.King(player)
	step := 2
	if d.Castle == Queenside {
		step = -2
	}
	dest := king.Pos.Add(chess.Offset{File: step})
	if king.IsEmpty() || !engine.IsLegalMove(board, recent, king, dest) {
		return chess.Move{}, fmt.Errorf("%v cannot castle: %w", player, errors.ErrUnresolvableNotation)
	}
	return chess.NewMove(king.Pos, dest), nil
}

// ParseSAN decodes text and resolves it against the position.
func ParseSAN(board *chess.Board, recent []chess.Move, player chess.Player, text string) (chess.Move, error) {
	d, err := Decode(text)
	if err != nil {
		return chess.Move{}, err
	}
	mv, err := Resolve(board, recent, player, d)
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "%q", text)
	}
	return mv, nil
}

// ParseCoordinates reads a move given as two squares, such as "e2e4",
// "e2-e4" or "e2 e4", optionally followed by a promotion letter as in
// "e7e8q" or "e7e8=Q".
func ParseCoordinates(text string) (chess.Move, bool) {
	s := strings.TrimSpace(text)
	if len(s) < 4 {
		return chess.Move{}, false
	}
	from, ok := chess.ParseSquare(s[:2])
	if !ok {
		return chess.Move{}, false
	}
	s = s[2:]
	if s[0] == '-' || s[0] == ' ' || isCapture(s[0]) {
		s = strings.TrimLeft(s[1:], " ")
	}
	if len(s) < 2 {
		return chess.Move{}, false
	}
	to, ok := chess.ParseSquare(s[:2])
	if !ok {
		return chess.Move{}, false
	}
	mv := chess.NewMove(from, to)

	rest := strings.TrimPrefix(s[2:], "=")
	switch len(rest) {
	case 0:
	case 1:
		kind := chess.KindFromLetter(rest[0])
		if !kind.IsPromotionChoice() {
			return chess.Move{}, false
		}
		mv.Promotion = kind
	default:
		return chess.Move{}, false
	}
	return mv, true
}
