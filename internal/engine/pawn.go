package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// pawnCanReach checks single and double pushes, diagonal captures and en
// passant.
func pawnCanReach(board *chess.Board, recent []chess.Move, pawn chess.Piece, dest chess.Position) bool {
	fwd := pawn.Owner.Forward()
	df := dest.File - pawn.Pos.File
	dr := dest.Rank - pawn.Pos.Rank
	target := board.PieceAt(dest)

	switch {
	case df == 0 && dr == fwd:
		return target.IsEmpty()
	case df == 0 && dr == 2*fwd:
		if pawn.HasMoved || !target.IsEmpty() {
			return false
		}
		return board.IsEmpty(pawn.Pos.Add(chess.Offset{Rank: fwd}))
	case abs(df) == 1 && dr == fwd:
		if !target.IsEmpty() {
			return true
		}
		return isEnPassant(board, recent, pawn, dest)
	}
	return false
}

// isEnPassant reports whether a diagonal pawn move to an empty dest captures
// an enemy pawn that has just advanced two squares alongside it.
func isEnPassant(board *chess.Board, recent []chess.Move, pawn chess.Piece, dest chess.Position) bool {
	if len(recent) == 0 || !board.IsEmpty(dest) {
		return false
	}
	last := recent[len(recent)-1]
	moved := board.PieceAt(last.To)
	if moved.Kind != chess.Pawn || moved.Owner != pawn.Owner.Opponent() {
		return false
	}
	if last.From.File != last.To.File || abs(last.To.Rank-last.From.Rank) != 2 {
		return false
	}
	return last.To.File == dest.File && last.To.Rank == pawn.Pos.Rank &&
		dest.Rank == pawn.Pos.Rank+pawn.Owner.Forward()
}

// IsEnPassant reports whether moving piece to dest is an en passant capture.
func IsEnPassant(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position) bool {
	return piece.Kind == chess.Pawn && dest.File != piece.Pos.File && isEnPassant(board, recent, piece, dest)
}

// IsPromotion reports whether moving piece to dest lands a pawn on its last rank.
func IsPromotion(piece chess.Piece, dest chess.Position) bool {
	return piece.Kind == chess.Pawn && dest.Rank == piece.Owner.PromotionRank()
}

// capturedSquare returns the square whose occupant is removed when piece
// moves to dest. It differs from dest only for en passant.
func capturedSquare(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position) chess.Position {
	if IsEnPassant(board, recent, piece, dest) {
		return chess.Pos(dest.File, piece.Pos.Rank)
	}
	return dest
}
