package chess

// Move is a request to move the piece on From to To. Promotion names the
// kind a pawn becomes on the last rank and is Empty otherwise.
type Move struct {
	From      Position
	To        Position
	Promotion Kind
}

// NewMove creates a move without a promotion choice.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}
