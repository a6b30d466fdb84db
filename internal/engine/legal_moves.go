package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// WouldCheck reports whether moving piece to dest leaves its owner's king
// attacked. The move is played on a scratch copy, so board is untouched.
// Promotions are simulated as queens; the choice cannot affect the mover's
// own king.
func WouldCheck(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position) bool {
	scratch := board.Clone()
	execute(scratch, recent, piece, dest, chess.Queen)
	inCheck, _ := IsInCheck(scratch, piece.Owner)
	return inCheck
}

// CanMakeAnyMove reports whether piece has at least one legal move.
func CanMakeAnyMove(board *chess.Board, recent []chess.Move, piece chess.Piece) bool {
	for _, off := range piece.Kind.Probes(piece.Owner) {
		if IsLegalMove(board, recent, piece, piece.Pos.Add(off)) {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal move of a player in inventory order.
// Promotions are expanded into one move per promotion choice.
func LegalMoves(board *chess.Board, recent []chess.Move, player chess.Player) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(player) {
		for file := 0; file < chess.BoardSize; file++ {
			for rank := 0; rank < chess.BoardSize; rank++ {
				dest := chess.Pos(file, rank)
				if !IsLegalMove(board, recent, piece, dest) {
					continue
				}
				if !IsPromotion(piece, dest) {
					moves = append(moves, chess.NewMove(piece.Pos, dest))
					continue
				}
				for _, kind := range promotionChoices {
					moves = append(moves, chess.Move{From: piece.Pos, To: dest, Promotion: kind})
				}
			}
		}
	}
	return moves
}

var promotionChoices = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// execute performs the board mutations of a move that is already known to
// be legal: captures (including en passant), the rook hop of castling,
// relocation, has-moved flags and promotion. It returns the captured piece.
func execute(board *chess.Board, recent []chess.Move, piece chess.Piece, dest chess.Position, promotion chess.Kind) chess.Piece {
	captured := board.PieceAt(capturedSquare(board, recent, piece, dest))
	if !captured.IsEmpty() {
		board.Remove(captured.ID)
	}

	if IsCastling(piece, dest) {
		rookFrom, rookTo := castlingRookSquares(piece.Pos, dest)
		rook := board.PieceAt(rookFrom)
		board.Relocate(rook.ID, rookTo)
		board.MarkMoved(rook.ID)
	}

	board.Relocate(piece.ID, dest)
	board.MarkMoved(piece.ID)

	if IsPromotion(piece, dest) {
		board.Promote(piece.ID, promotion)
	}
	return captured
}
