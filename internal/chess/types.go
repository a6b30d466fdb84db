// Package chess provides core chess types: players, piece kinds, squares,
// moves and the board that stores them.
package chess

// Player identifies one of the two sides. White moves first.
type Player int

const (
	NoPlayer Player = -1 // Owner of the Empty piece
	White    Player = 0
	Black    Player = 1
)

// String returns the string representation of a player.
func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// Forward returns the rank direction this player's pawns advance in.
func (p Player) Forward() int {
	if p == Black {
		return -1
	}
	return 1
}

// HomeRank returns the index of the player's back rank.
func (p Player) HomeRank() int {
	if p == Black {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the index of the rank the player's pawns start on.
func (p Player) PawnRank() int {
	return p.HomeRank() + p.Forward()
}

// PromotionRank returns the index of the rank where the player's pawns promote.
func (p Player) PromotionRank() int {
	return p.Opponent().HomeRank()
}

// Kind is the variant tag of a piece.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
// Empty is rendered as '.'.
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Rank returns the export rank of a kind: Pawn 1 through King 6, Empty 0.
func (k Kind) Rank() int {
	if k < Empty || k >= NumKinds {
		return 0
	}
	return int(k)
}

// Value returns the material value used for scores.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	}
	return 0
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k Kind) IsPromotionChoice() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// KindFromLetter converts a piece letter (either case) to a kind.
// It returns Empty for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return Empty
}

// Offset is a (file, rank) displacement.
type Offset struct {
	File, Rank int
}

var (
	knightOffsets = []Offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	diagonalOffsets = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightOffsets = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	kingOffsets     = []Offset{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
		{2, 0}, {-2, 0},
	}
)

// KnightOffsets returns the eight knight jumps.
func KnightOffsets() []Offset { return knightOffsets }

// DiagonalDirections returns the four diagonal unit steps.
func DiagonalDirections() []Offset { return diagonalOffsets }

// StraightDirections returns the four orthogonal unit steps.
func StraightDirections() []Offset { return straightOffsets }

// Probes returns the displacement table used to ask whether a piece of
// kind k owned by p can move at all. Sliders only list unit steps: if the
// first step is unavailable no longer step along that line is either.
func (k Kind) Probes(p Player) []Offset {
	switch k {
	case Pawn:
		f := p.Forward()
		return []Offset{{0, f}, {0, 2 * f}, {1, f}, {-1, f}}
	case Knight:
		return knightOffsets
	case Bishop:
		return diagonalOffsets
	case Rook:
		return straightOffsets
	case Queen:
		return kingOffsets[:8]
	case King:
		return kingOffsets
	}
	return nil
}
