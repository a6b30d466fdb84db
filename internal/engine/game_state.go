package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsCheckmate reports whether player, whose king is attacked by attackers,
// is checkmated. Each attacker is considered on its own: if the player
// cannot answer any single one of them, the position is mate.
func IsCheckmate(board *chess.Board, recent []chess.Move, player chess.Player, attackers []chess.Piece) bool {
	for _, attacker := range attackers {
		if !canAnswer(board, recent, player, attacker) {
			return true
		}
	}
	return false
}

// canAnswer reports whether player has a legal move that blocks or
// captures attacker, or a king move out of the attack.
func canAnswer(board *chess.Board, recent []chess.Move, player chess.Player, attacker chess.Piece) bool {
	king := board.King(player)
	defenders := board.Pieces(player)
	for _, sq := range defenseSquares(king.Pos, attacker) {
		for _, piece := range defenders {
			if IsLegalMove(board, recent, piece, sq) {
				return true
			}
		}
	}
	return CanMakeAnyMove(board, recent, king)
}

// defenseSquares lists the squares where a piece would stop attacker: the
// line from the king up to and including the attacker, or only the
// attacker's square for a knight. A pawn that has just made a double step
// can also be taken en passant on the square behind it.
func defenseSquares(kingPos chess.Position, attacker chess.Piece) []chess.Position {
	var squares []chess.Position
	df := attacker.Pos.File - kingPos.File
	dr := attacker.Pos.Rank - kingPos.Rank
	if attacker.Kind == chess.Knight || !aligned(df, dr) {
		squares = append(squares, attacker.Pos)
	} else {
		step := chess.Offset{File: sign(df), Rank: sign(dr)}
		for sq := kingPos.Add(step); ; sq = sq.Add(step) {
			squares = append(squares, sq)
			if sq == attacker.Pos {
				break
			}
		}
	}
	if attacker.Kind == chess.Pawn {
		squares = append(squares, attacker.Pos.Add(chess.Offset{Rank: -attacker.Owner.Forward()}))
	}
	return squares
}

// IsStalemate reports whether player is not in check but has no legal move.
func IsStalemate(board *chess.Board, recent []chess.Move, player chess.Player) bool {
	if inCheck, _ := IsInCheck(board, player); inCheck {
		return false
	}
	for _, piece := range board.Pieces(player) {
		if CanMakeAnyMove(board, recent, piece) {
			return false
		}
	}
	return true
}
