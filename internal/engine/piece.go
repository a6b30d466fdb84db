package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsLegalMove reports whether piece may move to dest. recent holds the
// moves played so far, oldest first; only the last one matters, for en
// passant. The move must fit the piece's movement rule and must not leave
// the mover's own king attacked.
func IsLegalMove(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position) bool {
	if piece.IsEmpty() || !dest.OnBoard() || dest == piece.Pos {
		return false
	}
	if board.PieceAt(dest).Owner == piece.Owner {
		return false
	}
	if !canReach(board, recent, piece, dest) {
		return false
	}
	return !WouldCheck(board, recent, piece, dest)
}

// canReach applies the movement rule of the piece's kind, ignoring
// whether the move exposes its own king.
func canReach(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position) bool {
	df := dest.File - piece.Pos.File
	dr := dest.Rank - piece.Pos.Rank

	switch piece.Kind {
	case chess.Empty:
		return false
	case chess.Pawn:
		return pawnCanReach(board, recent, piece, dest)
	case chess.Knight:
		return (abs(df) == 1 && abs(dr) == 2) || (abs(df) == 2 && abs(dr) == 1)
	case chess.Bishop:
		return isDiagonal(df, dr) && PathClear(board, piece.Pos, dest)
	case chess.Rook:
		return isStraight(df, dr) && PathClear(board, piece.Pos, dest)
	case chess.Queen:
		return (isDiagonal(df, dr) || isStraight(df, dr)) && PathClear(board, piece.Pos, dest)
	case chess.King:
		if abs(df) <= 1 && abs(dr) <= 1 {
			return true
		}
		return dr == 0 && abs(df) == 2 && canCastle(board, piece, dest)
	}
	panic("engine: unknown piece kind " + piece.Kind.String())
}
