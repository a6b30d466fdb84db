package chess

// PieceID identifies a piece record on a Board. The zero id is the shared
// Empty record.
type PieceID int

// NoPiece is the id of the Empty record.
const NoPiece PieceID = 0

// Piece is a record describing one piece. Records are plain values; the
// board that owns them is always passed explicitly to the rules.
type Piece struct {
	ID       PieceID
	Kind     Kind
	Owner    Player
	Pos      Position
	HasMoved bool
}

// EmptyAt returns the Empty piece value for a square.
func EmptyAt(pos Position) Piece {
	return Piece{ID: NoPiece, Kind: Empty, Owner: NoPlayer, Pos: pos}
}

// IsEmpty reports whether p is the Empty variant.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind.Value()
}

// Identifier returns the exported numeric id: kind rank + 7*owner, 0 for Empty.
func (p Piece) Identifier() int {
	if p.IsEmpty() {
		return 0
	}
	return p.Kind.Rank() + 7*int(p.Owner)
}

// Symbol returns the display character: uppercase for White, lowercase for
// Black and '.' for an empty square.
func (p Piece) Symbol() byte {
	c := p.Kind.Letter()
	if p.Owner == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns a short description such as "White Knight on g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty on " + p.Pos.String()
	}
	return p.Owner.String() + " " + p.Kind.String() + " on " + p.Pos.String()
}
