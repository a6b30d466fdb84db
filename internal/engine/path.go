package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// PathClear reports whether every square strictly between from and to is
// empty. The squares must lie on a common rank, file or diagonal.
func PathClear(board *chess.Board, from, to chess.Position) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	if !aligned(df, dr) {
		return false
	}
	step := chess.Offset{File: sign(df), Rank: sign(dr)}
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// aligned reports whether a displacement runs along a line a slider can use.
func aligned(df, dr int) bool {
	if df == 0 && dr == 0 {
		return false
	}
	return df == 0 || dr == 0 || abs(df) == abs(dr)
}

// isStraight reports whether a displacement runs along a rank or file.
func isStraight(df, dr int) bool {
	return (df == 0) != (dr == 0)
}

// isDiagonal reports whether a displacement runs along a diagonal.
func isDiagonal(df, dr int) bool {
	return df != 0 && abs(df) == abs(dr)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign maps x to -1, 0 or 1, giving the unit step toward it.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
