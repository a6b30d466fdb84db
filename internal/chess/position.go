package chess

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Position is a square given as zero-based file (a=0) and rank (1=0).
type Position struct {
	File int
	Rank int
}

// Pos is shorthand for constructing a Position.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// OnBoard reports whether both coordinates are within 0..7.
func (p Position) OnBoard() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Add returns the position displaced by o.
func (p Position) Add(o Offset) Position {
	return Position{File: p.File + o.File, Rank: p.Rank + o.Rank}
}

// FileLetter returns the algebraic file letter, or '?' off the board.
func (p Position) FileLetter() byte {
	if p.File < 0 || p.File >= BoardSize {
		return '?'
	}
	return byte('a' + p.File)
}

// RankDigit returns the algebraic rank digit, or '?' off the board.
func (p Position) RankDigit() byte {
	if p.Rank < 0 || p.Rank >= BoardSize {
		return '?'
	}
	return byte('1' + p.Rank)
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string([]byte{p.FileLetter(), p.RankDigit()})
}

// ParseSquare converts an algebraic square such as "e4" to a Position.
func ParseSquare(s string) (Position, bool) {
	if len(s) != 2 {
		return Position{}, false
	}
	file, ok := FileFromLetter(s[0])
	if !ok {
		return Position{}, false
	}
	rank, ok := RankFromDigit(s[1])
	if !ok {
		return Position{}, false
	}
	return Position{File: file, Rank: rank}, true
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for tables of constant squares.
func MustParseSquare(s string) Position {
	p, ok := ParseSquare(s)
	if !ok {
		panic("chess: bad square " + s)
	}
	return p
}

// FileFromLetter converts 'a'..'h' to 0..7.
func FileFromLetter(c byte) (int, bool) {
	if c < 'a' || c > 'h' {
		return 0, false
	}
	return int(c - 'a'), true
}

// RankFromDigit converts '1'..'8' to 0..7.
func RankFromDigit(c byte) (int, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return int(c - '1'), true
}
