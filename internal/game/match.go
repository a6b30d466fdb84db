package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/notation"
)

// Match is a game between two local players. It owns the board; all
// changes go through the Submit methods and Undo. A Match is not safe for
// concurrent use.
type Match struct {
	ID  uuid.UUID
	cfg *config.Config

	board  *chess.Board
	toMove chess.Player

	// moves is the en passant lookback: any move implied by the starting
	// FEN followed by every played move.
	moves   []chess.Move
	history []HistoryEntry

	startFEN      string
	startHalfmove int
	startMove     int
	over          bool
}

// NewMatch starts a match from cfg.StartFEN, or from the standard position
// when it is empty. A nil cfg uses the defaults.
func NewMatch(cfg *config.Config) (*Match, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Draw == nil || cfg.Render == nil {
		filled := *cfg
		if filled.Draw == nil {
			filled.Draw = config.NewDrawConfig()
		}
		if filled.Render == nil {
			filled.Render = config.NewRenderConfig()
		}
		cfg = &filled
	}

	setup := engine.NewInitialSetup()
	if cfg.StartFEN != "" {
		var err error
		if setup, err = engine.NewBoardFromFEN(cfg.StartFEN); err != nil {
			return nil, errors.Wrap(err, "start position")
		}
	}

	m := &Match{
		ID:            uuid.New(),
		cfg:           cfg,
		board:         setup.Board,
		toMove:        setup.ToMove,
		moves:         append([]chess.Move(nil), setup.Recent...),
		startHalfmove: setup.HalfmoveClock,
		startMove:     setup.MoveNumber,
	}
	m.startFEN = m.FEN()
	m.logf(2, "new match from %s", m.startFEN)
	return m, nil
}

// SubmitMove plays a move given by its squares.
func (m *Match) SubmitMove(mv chess.Move) (Outcome, error) {
	return m.submit(mv, mv.String())
}

// SubmitSAN plays a move given in standard algebraic notation.
func (m *Match) SubmitSAN(text string) (Outcome, error) {
	if m.over {
		return m.reject(text, errors.ErrMatchOver)
	}
	mv, err := notation.ParseSAN(m.board, m.moves, m.toMove, text)
	if err != nil {
		return m.reject(text, err)
	}
	return m.submit(mv, text)
}

// Play accepts either coordinate text ("e2e4", "e7e8q") or SAN.
func (m *Match) Play(text string) (Outcome, error) {
	if mv, ok := notation.ParseCoordinates(text); ok {
		return m.submit(mv, text)
	}
	return m.SubmitSAN(text)
}

func (m *Match) submit(mv chess.Move, text string) (Outcome, error) {
	if m.over {
		return m.reject(text, errors.ErrMatchOver)
	}
	if err := engine.Validate(m.board, m.moves, m.toMove, mv); err != nil {
		return m.reject(text, err)
	}

	before := m.board.SaveState()
	mover := m.board.PieceAt(mv.From)
	san := notation.Encode(m.board, m.moves, mv)

	captured, stored, err := engine.Apply(m.board, m.moves, m.toMove, mv)
	if err != nil {
		m.board.RestoreState(before)
		return m.reject(text, err)
	}

	m.moves = append(m.moves, stored)
	m.toMove = m.toMove.Opponent()

	inCheck, attackers := engine.IsInCheck(m.board, m.toMove)
	mate := inCheck && engine.IsCheckmate(m.board, m.moves, m.toMove, attackers)

	m.history = append(m.history, HistoryEntry{
		Move:     stored,
		Piece:    mover,
		Captured: captured,
		Notation: notation.Annotate(san, inCheck, mate),
		before:   before,
	})

	outcome := OutcomeSuccess
	reason := ""
	switch {
	case mate:
		outcome = mateOutcome(m.toMove)
	case inCheck:
		outcome = checkOutcome(m.toMove)
	default:
		if reason = m.drawReason(); reason != "" {
			outcome = OutcomeDraw
		}
	}
	last := &m.history[len(m.history)-1]
	last.Outcome = outcome
	m.over = outcome.IsTerminal()

	m.logf(2, "ply %d %v: %s (%v) -> %v", len(m.history), mover.Owner, last.Notation, stored, outcome)
	switch {
	case mate:
		m.logf(1, "%v checkmated after %s", m.toMove, last.Notation)
	case outcome == OutcomeDraw:
		m.logf(1, "draw by %s after %s", reason, last.Notation)
	}
	return outcome, nil
}

// reject reports a move that was not played.
func (m *Match) reject(text string, err error) (Outcome, error) {
	err = &errors.MoveError{
		Err:      err,
		Ply:      len(m.history) + 1,
		Player:   m.toMove.String(),
		MoveText: text,
	}
	m.logf(2, "rejected: %v", err)
	return OutcomeInvalid, err
}

// Undo takes back the last move, restoring the board exactly as it was,
// including has-moved flags and promotions.
func (m *Match) Undo() error {
	if len(m.history) == 0 {
		return errors.ErrNothingToUndo
	}
	last := m.history[len(m.history)-1]
	m.board.RestoreState(last.before)
	m.history = m.history[:len(m.history)-1]
	m.moves = m.moves[:len(m.moves)-1]
	m.toMove = m.toMove.Opponent()
	m.over = false
	m.logf(2, "undo %s", last.Notation)
	return nil
}

// StartFEN returns the position the match started from.
func (m *Match) StartFEN() string {
	return m.startFEN
}

// StartMoveNumber returns the full move number of the first move.
func (m *Match) StartMoveNumber() int {
	return m.startMove
}

// Result returns the outcome of the last move, or OutcomeSuccess before
// the first move.
func (m *Match) Result() Outcome {
	if len(m.history) == 0 {
		return OutcomeSuccess
	}
	return m.history[len(m.history)-1].Outcome
}

// ToMove returns the player whose turn it is.
func (m *Match) ToMove() chess.Player {
	return m.toMove
}

// IsOver reports whether the match ended in checkmate or a draw.
func (m *Match) IsOver() bool {
	return m.over
}

// InCheck reports whether the player to move is in check.
func (m *Match) InCheck() bool {
	inCheck, _ := engine.IsInCheck(m.board, m.toMove)
	return inCheck
}

// Board returns a copy of the current board.
func (m *Match) Board() *chess.Board {
	return m.board.Clone()
}

// History returns the played moves, oldest first.
func (m *Match) History() []HistoryEntry {
	return append([]HistoryEntry(nil), m.history...)
}

// Moves returns the played moves without their annotations.
func (m *Match) Moves() []chess.Move {
	moves := make([]chess.Move, len(m.history))
	for i, e := range m.history {
		moves[i] = e.Move
	}
	return moves
}

// Notations returns the SAN of every played move, in step with History.
func (m *Match) Notations() []string {
	sans := make([]string, len(m.history))
	for i, e := range m.history {
		sans[i] = e.Notation
	}
	return sans
}

// LegalMoves lists the moves available to the player to move.
func (m *Match) LegalMoves() []chess.Move {
	if m.over {
		return nil
	}
	return engine.LegalMoves(m.board, m.moves, m.toMove)
}

// SAN renders a move available in the current position, without a check
// suffix.
func (m *Match) SAN(mv chess.Move) string {
	return notation.Encode(m.board, m.moves, mv)
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (m *Match) FEN() string {
	halfmove := m.startHalfmove
	for _, e := range m.history {
		if e.resetsClock() {
			halfmove = 0
		} else {
			halfmove++
		}
	}
	moveNumber := m.startMove
	for _, e := range m.history {
		if e.Piece.Owner == chess.Black {
			moveNumber++
		}
	}
	return engine.BoardToFEN(m.board, m.toMove, m.moves, halfmove, moveNumber)
}

// logf writes a diagnostic line when the configured verbosity is at least level.
func (m *Match) logf(level int, format string, args ...interface{}) {
	if m.cfg.Verbosity < level || m.cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(m.cfg.LogFile, "match %s: %s\n", m.ID, fmt.Sprintf(format, args...))
}
