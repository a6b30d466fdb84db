package notation

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// Encode renders a legal move in SAN. It must be called on the position
// before the move is played; check and mate suffixes are added afterwards
// with Annotate.
func Encode(board *chess.Board, recent []chess.Move, mv chess.Move) string {
	piece := board.PieceAt(mv.From)

	if engine.IsCastling(piece, mv.To) {
		if mv.To.File > mv.From.File {
			return "O-O"
		}
		return "O-O-O"
	}

	capture := !board.IsEmpty(mv.To) || engine.IsEnPassant(board, recent, piece, mv.To)

	var sb strings.Builder
	if piece.Kind == chess.Pawn {
		if capture {
			sb.WriteByte(mv.From.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(mv.To.String())
		if engine.IsPromotion(piece, mv.To) && mv.Promotion.IsPromotionChoice() {
			sb.WriteByte(mv.Promotion.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(piece.Kind.Letter())
	sb.WriteString(disambiguation(board, recent, piece, mv.To))
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(mv.To.String())
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell piece
// apart from other pieces of its kind that could also move to dest.
func disambiguation(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range board.Pieces(piece.Owner) {
		if other.ID == piece.ID || other.Kind != piece.Kind {
			continue
		}
		if !engine.IsLegalMove(board, recent, other, dest) {
			continue
		}
		ambiguous = true
		sameFile = sameFile || other.Pos.File == piece.Pos.File
		sameRank = sameRank || other.Pos.Rank == piece.Pos.Rank
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(piece.Pos.FileLetter())
	case !sameRank:
		return string(piece.Pos.RankDigit())
	}
	return piece.Pos.String()
}

// Annotate appends '#' for mate or '+' for check.
func Annotate(san string, check, mate bool) string {
	switch {
	case mate:
		return san + "#"
	case check:
		return san + "+"
	}
	return san
}
