package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Apply plays a move for player on board. The board is changed only when
// the move is legal; otherwise an error wrapping errors.ErrIllegalMove or
// errors.ErrIllegalPromotion is returned and the board is left as it was.
// On success Apply returns the captured piece (the Empty variant if none)
// and the move as stored, with any promotion choice that does not apply
// cleared.
func Apply(board *chess.Board, recent []chess.Move, player chess.Player, mv chess.Move) (chess.Piece, chess.Move, error) {
	if err := Validate(board, recent, player, mv); err != nil {
		return chess.EmptyAt(mv.To), mv, err
	}
	piece := board.PieceAt(mv.From)
	if !IsPromotion(piece, mv.To) {
		mv.Promotion = chess.Empty
	}
	captured := execute(board, recent, piece, mv.To, mv.Promotion)
	return captured, mv, nil
}

// Validate checks a move for player without playing it.
func Validate(board *chess.Board, recent []chess.Move, player chess.Player, mv chess.Move) error {
	if !mv.From.OnBoard() || !mv.To.OnBoard() {
		return fmt.Errorf("%v: square off the board: %w", mv, errors.ErrIllegalMove)
	}
	if mv.From == mv.To {
		return fmt.Errorf("%v: start and end are the same square: %w", mv, errors.ErrIllegalMove)
	}
	piece := board.PieceAt(mv.From)
	if piece.IsEmpty() {
		return fmt.Errorf("%v: no piece on %v: %w", mv, mv.From, errors.ErrIllegalMove)
	}
	if piece.Owner != player {
		return fmt.Errorf("%v: %v does not belong to %v: %w", mv, piece, player, errors.ErrIllegalMove)
	}
	if !IsLegalMove(board, recent, piece, mv.To) {
		return fmt.Errorf("%v: %v cannot move to %v: %w", mv, piece, mv.To, errors.ErrIllegalMove)
	}
	if IsPromotion(piece, mv.To) && !mv.Promotion.IsPromotionChoice() {
		return fmt.Errorf("%v: cannot promote to %v: %w", mv, mv.Promotion, errors.ErrIllegalPromotion)
	}
	return nil
}
