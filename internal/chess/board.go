package chess

import "fmt"

// Board stores the pieces of a match. Piece records live in a flat array
// indexed by PieceID; every square of the grid holds the id of exactly one
// record, with NoPiece standing for Empty. Each player also has an ordered
// inventory of its active pieces, which fixes the order in which candidate
// pieces are considered when resolving notation.
type Board struct {
	records   []Piece
	squares   [BoardSize][BoardSize]PieceID // squares[file][rank]
	inventory [2][]PieceID
	kings     [2]PieceID
}

// BoardState is a saved copy of a board, restorable with RestoreState.
type BoardState struct {
	board Board
}

// NewBoard creates a board with every square empty.
func NewBoard() *Board {
	return &Board{
		records: []Piece{{ID: NoPiece, Kind: Empty, Owner: NoPlayer}},
	}
}

var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board in the standard starting arrangement.
// White pieces are added to the inventory before Black's, back rank first.
func NewInitialBoard() *Board {
	b := NewBoard()
	for _, p := range []Player{White, Black} {
		for file, kind := range backRank {
			b.Place(kind, p, Pos(file, p.HomeRank()), false)
		}
		for file := 0; file < BoardSize; file++ {
			b.Place(Pawn, p, Pos(file, p.PawnRank()), false)
		}
	}
	return b
}

// Place creates a new piece record on an empty square and appends it to the
// owner's inventory. It returns the new piece.
func (b *Board) Place(kind Kind, owner Player, pos Position, hasMoved bool) Piece {
	if kind == Empty || (owner != White && owner != Black) {
		panic(fmt.Sprintf("chess: cannot place %v for %v", kind, owner))
	}
	if !pos.OnBoard() || b.squares[pos.File][pos.Rank] != NoPiece {
		panic(fmt.Sprintf("chess: cannot place %v on %v", kind, pos))
	}
	id := PieceID(len(b.records))
	piece := Piece{ID: id, Kind: kind, Owner: owner, Pos: pos, HasMoved: hasMoved}
	b.records = append(b.records, piece)
	b.squares[pos.File][pos.Rank] = id
	b.inventory[owner] = append(b.inventory[owner], id)
	if kind == King {
		b.kings[owner] = id
	}
	return piece
}

// PieceAt returns the piece on pos. Squares off the board and empty squares
// both yield the Empty variant.
func (b *Board) PieceAt(pos Position) Piece {
	if !pos.OnBoard() {
		return EmptyAt(pos)
	}
	id := b.squares[pos.File][pos.Rank]
	if id == NoPiece {
		return EmptyAt(pos)
	}
	return b.records[id]
}

// IsEmpty reports whether an on-board square holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.PieceAt(pos).IsEmpty()
}

// Piece returns the record with the given id.
func (b *Board) Piece(id PieceID) Piece {
	if id <= NoPiece || int(id) >= len(b.records) {
		return EmptyAt(Position{-1, -1})
	}
	return b.records[id]
}

// Pieces returns a player's active pieces in inventory order.
func (b *Board) Pieces(p Player) []Piece {
	if p != White && p != Black {
		return nil
	}
	pieces := make([]Piece, 0, len(b.inventory[p]))
	for _, id := range b.inventory[p] {
		pieces = append(pieces, b.records[id])
	}
	return pieces
}

// King returns the player's king, or the Empty variant if it has none.
func (b *Board) King(p Player) Piece {
	if p != White && p != Black || b.kings[p] == NoPiece {
		return EmptyAt(Position{-1, -1})
	}
	return b.records[b.kings[p]]
}

// Relocate moves a piece to an empty square. It does not touch HasMoved.
func (b *Board) Relocate(id PieceID, to Position) {
	piece := b.records[id]
	if b.squares[to.File][to.Rank] != NoPiece {
		panic(fmt.Sprintf("chess: %v is occupied", to))
	}
	b.squares[piece.Pos.File][piece.Pos.Rank] = NoPiece
	b.squares[to.File][to.Rank] = id
	b.records[id].Pos = to
}

// MarkMoved sets the HasMoved flag of a piece.
func (b *Board) MarkMoved(id PieceID) {
	b.records[id].HasMoved = true
}

// Remove takes a piece off the board and out of its owner's inventory.
func (b *Board) Remove(id PieceID) Piece {
	piece := b.records[id]
	b.squares[piece.Pos.File][piece.Pos.Rank] = NoPiece
	b.inventory[piece.Owner] = removeID(b.inventory[piece.Owner], id)
	if b.kings[piece.Owner] == id {
		b.kings[piece.Owner] = NoPiece
	}
	return piece
}

// Promote replaces a pawn with a new piece of the given kind on the same
// square. The new piece goes to the end of the owner's inventory.
func (b *Board) Promote(id PieceID, kind Kind) Piece {
	pawn := b.Remove(id)
	return b.Place(kind, pawn.Owner, pawn.Pos, true)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		records: append([]Piece(nil), b.records...),
		squares: b.squares,
		kings:   b.kings,
	}
	for p := range b.inventory {
		c.inventory[p] = append([]PieceID(nil), b.inventory[p]...)
	}
	return c
}

// SaveState returns a snapshot of the board.
func (b *Board) SaveState() BoardState {
	return BoardState{board: *b.Clone()}
}

// RestoreState puts the board back into a saved state.
func (b *Board) RestoreState(s BoardState) {
	*b = *s.board.Clone()
}

// Material returns the summed value of a player's active pieces.
func (b *Board) Material(p Player) int {
	total := 0
	for _, piece := range b.Pieces(p) {
		total += piece.Value()
	}
	return total
}

// CheckInvariants verifies that the grid, the records and the inventories
// agree with each other.
func (b *Board) CheckInvariants() error {
	seen := make(map[PieceID]Position)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			id := b.squares[file][rank]
			if id == NoPiece {
				continue
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("piece %d on both %v and %v", id, prev, Pos(file, rank))
			}
			seen[id] = Pos(file, rank)
			if got := b.records[id].Pos; got != Pos(file, rank) {
				return fmt.Errorf("piece %d on %v records position %v", id, Pos(file, rank), got)
			}
		}
	}
	active := 0
	for p, ids := range b.inventory {
		for _, id := range ids {
			piece := b.records[id]
			if piece.Owner != Player(p) {
				return fmt.Errorf("%v listed in %v inventory", piece, Player(p))
			}
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%v is in the inventory but not on the board", piece)
			}
			active++
		}
		if k := b.kings[p]; k != NoPiece && b.records[k].Kind != King {
			return fmt.Errorf("%v king id points at %v", Player(p), b.records[k])
		}
	}
	if active != len(seen) {
		return fmt.Errorf("%d pieces on the board but %d in inventories", len(seen), active)
	}
	return nil
}

func removeID(ids []PieceID, id PieceID) []PieceID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

// Grid returns the piece on every square, indexed [file][rank].
func (b *Board) Grid() [BoardSize][BoardSize]Piece {
	var grid [BoardSize][BoardSize]Piece
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			grid[file][rank] = b.PieceAt(Pos(file, rank))
		}
	}
	return grid
}
