package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsInCheck reports whether the player's king is attacked, together with
// every enemy piece attacking it. A player without a king is never in check.
func IsInCheck(board *chess.Board, player chess.Player) (bool, []chess.Piece) {
	king := board.King(player)
	if king.IsEmpty() {
		return false, nil
	}
	attackers := Attackers(board, king.Pos, player.Opponent())
	return len(attackers) > 0, attackers
}

// Attackers returns the pieces of the given player that attack sq.
// Sliders are found by scanning rays outward from sq; the first piece on a
// ray is the only one that can attack along it.
func Attackers(board *chess.Board, sq chess.Position, by chess.Player) []chess.Piece {
	var attackers []chess.Piece

	for _, dir := range chess.StraightDirections() {
		if p, dist := firstOnRay(board, sq, dir); p.Owner == by {
			if p.Kind == chess.Rook || p.Kind == chess.Queen || (p.Kind == chess.King && dist == 1) {
				attackers = append(attackers, p)
			}
		}
	}

	for _, dir := range chess.DiagonalDirections() {
		p, dist := firstOnRay(board, sq, dir)
		if p.Owner != by {
			continue
		}
		switch p.Kind {
		case chess.Bishop, chess.Queen:
			attackers = append(attackers, p)
		case chess.King:
			if dist == 1 {
				attackers = append(attackers, p)
			}
		case chess.Pawn:
			// A pawn captures one step forward, so it sits one step behind sq.
			if dist == 1 && dir.Rank == -by.Forward() {
				attackers = append(attackers, p)
			}
		}
	}

	for _, off := range chess.KnightOffsets() {
		p := board.PieceAt(sq.Add(off))
		if p.Kind == chess.Knight && p.Owner == by {
			attackers = append(attackers, p)
		}
	}

	return attackers
}

// IsSquareAttacked reports whether any piece of the given player attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Position, by chess.Player) bool {
	return len(Attackers(board, sq, by)) > 0
}

// firstOnRay walks from sq in direction dir and returns the first piece met
// and its distance. It returns the Empty variant when the ray leaves the board.
func firstOnRay(board *chess.Board, sq chess.Position, dir chess.Offset) (chess.Piece, int) {
	pos := sq.Add(dir)
	for dist := 1; pos.OnBoard(); dist++ {
		if p := board.PieceAt(pos); !p.IsEmpty() {
			return p, dist
		}
		pos = pos.Add(dir)
	}
	return chess.EmptyAt(pos), 0
}
