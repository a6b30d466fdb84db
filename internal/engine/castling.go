package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// canCastle checks castling by moving the king two files toward a rook.
// The king and that corner rook must both be unmoved, the squares between
// them empty, and the king may not be in check or cross an attacked
// square. The destination itself is checked by IsLegalMove.
func canCastle(board *chess.Board, king chess.Piece, dest chess.Position) bool {
	if king.HasMoved || king.Pos.Rank != king.Owner.HomeRank() || king.Pos.File != 4 {
		return false
	}
	rookFrom, _ := castlingRookSquares(king.Pos, dest)
	rook := board.PieceAt(rookFrom)
	if rook.Kind != chess.Rook || rook.Owner != king.Owner || rook.HasMoved {
		return false
	}
	if !PathClear(board, king.Pos, rookFrom) {
		return false
	}
	if inCheck, _ := IsInCheck(board, king.Owner); inCheck {
		return false
	}
	// With the king out of check, its own square shields no line to the
	// square it crosses.
	step := chess.Offset{File: sign(dest.File - king.Pos.File)}
	return !IsSquareAttacked(board, king.Pos.Add(step), king.Owner.Opponent())
}

// castlingRookSquares returns where the rook starts and ends when the king
// on kingPos castles to dest.
func castlingRookSquares(kingPos, dest chess.Position) (from, to chess.Position) {
	if dest.File > kingPos.File {
		return chess.Pos(chess.BoardSize-1, kingPos.Rank), chess.Pos(dest.File-1, kingPos.Rank)
	}
	return chess.Pos(0, kingPos.Rank), chess.Pos(dest.File+1, kingPos.Rank)
}

// IsCastling reports whether moving piece to dest is a castling move.
func IsCastling(piece chess.Piece, dest chess.Position) bool {
	return piece.Kind == chess.King && dest.Rank == piece.Pos.Rank && abs(dest.File-piece.Pos.File) == 2
}
