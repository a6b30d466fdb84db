// Package engine implements the rules of chess on top of chess.Board:
// move legality, check, checkmate and stalemate detection, and FEN.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is a position read from FEN.
type Setup struct {
	Board  *chess.Board
	ToMove chess.Player
	// Recent holds the double pawn step implied by the en passant field,
	// so that the capture stays available on the first move.
	Recent        []chess.Move
	HalfmoveClock int
	MoveNumber    int
}

// castlingRights records which castling options a FEN grants.
type castlingRights struct {
	kingside, queenside [2]bool
}

// NewBoardFromFEN parses a FEN string. Has-moved flags are derived from the
// position: pawns off their start rank have moved, and kings and rooks are
// unmoved only where a castling right refers to them.
func NewBoardFromFEN(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	setup := &Setup{Board: chess.NewBoard(), ToMove: chess.White, MoveNumber: 1}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	if err := parsePiecePositions(setup.Board, parts[0], rights); err != nil {
		return nil, err
	}
	if err := parseSideToMove(setup, parts); err != nil {
		return nil, err
	}
	// The side to move could capture a king left in check.
	if inCheck, _ := IsInCheck(setup.Board, setup.ToMove.Opponent()); inCheck {
		return nil, fmt.Errorf("%v is in check but not to move: %w", setup.ToMove.Opponent(), errors.ErrInvalidFEN)
	}
	if err := parseEnPassant(setup, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(setup, parts); err != nil {
		return nil, err
	}
	return setup, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string, rights castlingRights) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement field: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			owner := chess.White
			if c >= 'a' && c <= 'z' {
				owner = chess.Black
			}
			if kind == chess.King && !board.King(owner).IsEmpty() {
				return fmt.Errorf("two %v kings: %w", owner, errors.ErrInvalidFEN)
			}
			pos := chess.Pos(file, rank)
			board.Place(kind, owner, pos, derivedHasMoved(kind, owner, pos, rights))
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}

	for _, p := range []chess.Player{chess.White, chess.Black} {
		if board.King(p).IsEmpty() {
			return fmt.Errorf("no %v king: %w", p, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// derivedHasMoved decides the has-moved flag of a piece placed from FEN.
func derivedHasMoved(kind chess.Kind, owner chess.Player, pos chess.Position, rights castlingRights) bool {
	home := owner.HomeRank()
	switch kind {
	case chess.Pawn:
		return pos.Rank != owner.PawnRank()
	case chess.King:
		onStart := pos == chess.Pos(4, home)
		return !onStart || !(rights.kingside[owner] || rights.queenside[owner])
	case chess.Rook:
		switch pos {
		case chess.Pos(chess.BoardSize-1, home):
			return !rights.kingside[owner]
		case chess.Pos(0, home):
			return !rights.queenside[owner]
		}
		return true
	}
	return false
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castlingRights, error) {
	var rights castlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.kingside[chess.White] = true
		case 'Q':
			rights.queenside[chess.White] = true
		case 'k':
			rights.kingside[chess.Black] = true
		case 'q':
			rights.queenside[chess.Black] = true
		default:
			return rights, fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// parseEnPassant turns the en passant target square into the double step
// that produced it. A target without a matching pawn is ignored.
func parseEnPassant(setup *Setup, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := setup.ToMove.Opponent()
	from := chess.Pos(target.File, target.Rank-mover.Forward())
	to := chess.Pos(target.File, target.Rank+mover.Forward())
	if p := setup.Board.PieceAt(to); p.Kind == chess.Pawn && p.Owner == mover && from.OnBoard() {
		setup.Recent = []chess.Move{chess.NewMove(from, to)}
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(setup *Setup, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		setup.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		setup.MoveNumber = n
	}
	return nil
}

// NewInitialSetup returns the standard starting position.
func NewInitialSetup() *Setup {
	return &Setup{Board: chess.NewInitialBoard(), ToMove: chess.White, MoveNumber: 1}
}

// BoardToFEN converts a position to a FEN string. recent supplies the last
// move for the en passant field.
func BoardToFEN(board *chess.Board, toMove chess.Player, recent []chess.Move, halfmoveClock, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, recent)
	fmt.Fprintf(&sb, " %d %d", halfmoveClock, moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.Pos(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	start := sb.Len()
	for _, p := range []chess.Player{chess.White, chess.Black} {
		king := board.King(p)
		if king.HasMoved || king.Pos != chess.Pos(4, p.HomeRank()) {
			continue
		}
		letters := []byte{'K', 'Q'}
		if p == chess.Black {
			letters = []byte{'k', 'q'}
		}
		for i, file := range []int{chess.BoardSize - 1, 0} {
			rook := board.PieceAt(chess.Pos(file, p.HomeRank()))
			if rook.Kind == chess.Rook && rook.Owner == p && !rook.HasMoved {
				sb.WriteByte(letters[i])
			}
		}
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square passed over by a double pawn step.
func writeEnPassant(sb *strings.Builder, board *chess.Board, recent []chess.Move) {
	if len(recent) > 0 {
		last := recent[len(recent)-1]
		moved := board.PieceAt(last.To)
		if moved.Kind == chess.Pawn && last.From.File == last.To.File && abs(last.To.Rank-last.From.Rank) == 2 {
			sb.WriteString(chess.Pos(last.To.File, (last.From.Rank+last.To.Rank)/2).String())
			return
		}
	}
	sb.WriteByte('-')
}
