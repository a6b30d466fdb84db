package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/game"
)

// Tag is a PGN tag pair.
type Tag struct {
	Name, Value string
}

// ResultString returns the PGN result token for an outcome.
func ResultString(o game.Outcome) string {
	switch o {
	case game.OutcomeBlackCheckmated:
		return "1-0"
	case game.OutcomeWhiteCheckmated:
		return "0-1"
	case game.OutcomeDraw:
		return "1/2-1/2"
	}
	return "*"
}

// Tags returns the seven tag roster for a match, plus SetUp and FEN when
// it did not start from the standard position. Unknown values are "?".
func Tags(m *game.Match) []Tag {
	tags := []Tag{
		{"Event", "Local match"},
		{"Site", "?"},
		{"Date", "????.??.??"},
		{"Round", "-"},
		{"White", "?"},
		{"Black", "?"},
		{"Result", ResultString(m.Result())},
	}
	if m.StartFEN() != engine.InitialFEN {
		tags = append(tags, Tag{"SetUp", "1"}, Tag{"FEN", m.StartFEN()})
	}
	return tags
}

// WritePGN writes the match as a PGN game with the given tags, or Tags(m)
// when tags is nil.
func WritePGN(w io.Writer, m *game.Match, tags []Tag) error {
	if tags == nil {
		tags = Tags(m)
	}
	for _, tag := range tags {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	lw := newLineWriter(w, DefaultLineLength)
	moveNumber := m.StartMoveNumber()
	for i, e := range m.History() {
		switch {
		case e.Piece.Owner == chess.White:
			lw.token(strconv.Itoa(moveNumber) + ".")
		case i == 0:
			lw.token(strconv.Itoa(moveNumber) + "...")
		}
		lw.token(e.Notation)
		if e.Piece.Owner == chess.Black {
			moveNumber++
		}
	}
	lw.token(ResultString(m.Result()))
	lw.newLine()
	return lw.err
}

// escapeTagValue escapes backslashes and quotes in a tag value.
func escapeTagValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
