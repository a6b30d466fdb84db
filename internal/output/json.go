package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/game"
)

// JSONMatch represents a match in JSON format.
type JSONMatch struct {
	ID       string                                `json:"id"`
	FEN      string                                `json:"fen"`
	StartFEN string                                `json:"startFEN,omitempty"`
	ToMove   string                                `json:"toMove"`
	Result   string                                `json:"result"`
	Outcome  int                                   `json:"outcome"`
	Scores   JSONScores                            `json:"scores"`
	Board    [chess.BoardSize][chess.BoardSize]int `json:"board"`
	Moves    []JSONMove                            `json:"moves,omitempty"`
}

// JSONScores holds the material totals.
type JSONScores struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	SAN       string `json:"san"`
	UCI       string `json:"uci"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// MatchToJSON converts a match to its JSON form. Board holds ExportBoard
// identifiers indexed [file][rank].
func MatchToJSON(m *game.Match) *JSONMatch {
	white, black := m.Scores()
	jm := &JSONMatch{
		ID:      m.ID.String(),
		FEN:     m.FEN(),
		ToMove:  strings.ToLower(m.ToMove().String()),
		Result:  ResultString(m.Result()),
		Outcome: int(m.Result()),
		Scores:  JSONScores{White: white, Black: black},
		Board:   m.ExportBoard(),
	}
	if start := m.StartFEN(); start != engine.InitialFEN {
		jm.StartFEN = start
	}
	for i, e := range m.History() {
		jmove := JSONMove{
			Ply:   i + 1,
			Color: strings.ToLower(e.Piece.Owner.String()),
			SAN:   e.Notation,
			UCI:   e.Move.String(),
			Piece: e.Piece.Kind.String(),
		}
		if e.IsCapture() {
			jmove.Captured = e.Captured.Kind.String()
		}
		if e.Move.Promotion != chess.Empty {
			jmove.Promotion = e.Move.Promotion.String()
		}
		jm.Moves = append(jm.Moves, jmove)
	}
	return jm
}

// WriteJSON writes the match as indented JSON.
func WriteJSON(w io.Writer, m *game.Match) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(MatchToJSON(m))
}
