package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has enough material
// left to mate:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minor [2][]chess.Piece

	for _, p := range []chess.Player{chess.White, chess.Black} {
		for _, piece := range board.Pieces(p) {
			switch piece.Kind {
			case chess.King:
				continue
			case chess.Knight, chess.Bishop:
				minor[p] = append(minor[p], piece)
			default:
				return false
			}
		}
	}

	white, black := minor[chess.White], minor[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop &&
			isLightSquare(white[0].Pos) == isLightSquare(black[0].Pos)
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(pos chess.Position) bool {
	return (pos.File+pos.Rank)%2 == 1
}
