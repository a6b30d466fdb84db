package game

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Render draws the board as text with rank 8 at the top. White pieces are
// uppercase, Black lowercase and empty squares are '.'.
func (m *Match) Render() string {
	return RenderBoard(m.board, m.cfg.Render.ShowCoordinates)
}

// RenderBoard draws any board in the same layout as Match.Render.
func RenderBoard(board *chess.Board, coordinates bool) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if coordinates {
			sb.WriteByte(byte('1' + rank))
			sb.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(board.PieceAt(chess.Pos(file, rank)).Symbol())
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

// ExportBoard returns the identifier of the piece on every square, indexed
// [file][rank]: 0 for empty, otherwise kind rank (Pawn 1 .. King 6) plus 7
// for Black.
func (m *Match) ExportBoard() [chess.BoardSize][chess.BoardSize]int {
	var grid [chess.BoardSize][chess.BoardSize]int
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			grid[file][rank] = m.board.PieceAt(chess.Pos(file, rank)).Identifier()
		}
	}
	return grid
}

// Scores returns the material total of each player, White first.
func (m *Match) Scores() (white, black int) {
	return m.board.Material(chess.White), m.board.Material(chess.Black)
}
