package game

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// IsDraw reports whether the current position is drawn under the
// configured rules.
func (m *Match) IsDraw() bool {
	return m.drawReason() != ""
}

// drawReason names the first draw rule the position meets, or returns ""
// if none applies.
func (m *Match) drawReason() string {
	rules := m.cfg.Draw
	if rules.ShortRepetition && shortRepetition(m.Moves(), rules.RepetitionLag) {
		return "repetition"
	}
	if rules.NoProgress && noProgress(m.Notations(), rules.NoProgressWindow) {
		return "no progress"
	}
	if engine.IsStalemate(m.board, m.moves, m.toMove) {
		return "stalemate"
	}
	if rules.InsufficientMaterial && engine.HasInsufficientMaterial(m.board) {
		return "insufficient material"
	}
	return ""
}

// shortRepetition reports whether the last move equals the moves lag and
// 2*lag plies before it. It compares moves, not positions.
func shortRepetition(moves []chess.Move, lag int) bool {
	n := len(moves)
	if lag < 1 || n <= 2*lag {
		return false
	}
	last := moves[n-1]
	return moves[n-1-lag] == last && moves[n-1-2*lag] == last
}

// noProgress reports whether the last window notation strings contain
// no piece move and no capture. Castling does not count as a piece move.
func noProgress(sans []string, window int) bool {
	if window < 1 || len(sans) < window {
		return false
	}
	for _, san := range sans[len(sans)-window:] {
		if san == "" || strings.ContainsRune(san, 'x') || strings.IndexByte("RNBQK", san[0]) >= 0 {
			return false
		}
	}
	return true
}
