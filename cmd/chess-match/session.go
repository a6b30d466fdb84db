package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/game"
	"github.com/lgbarn/chessmatch-go/internal/output"
)

const commandList = "undo, moves, scores, history, fen, export, pgn, json, board, quit"

// session reads moves and commands line by line and reports on out.
type session struct {
	match *game.Match
	in    *bufio.Scanner
	out   io.Writer
}

func newSession(m *game.Match, in io.Reader, out io.Writer) *session {
	return &session{match: m, in: bufio.NewScanner(in), out: out}
}

// run loops until input ends, "quit" is entered or the match is over.
func (s *session) run() error {
	fmt.Fprintf(s.out, "Match %s\n", s.match.ID)
	fmt.Fprint(s.out, s.match.Render())
	for {
		fmt.Fprintf(s.out, "%v to move> ", s.match.ToMove())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if done := s.handle(line); done {
			return nil
		}
	}
}

// handle executes one input line and reports whether the session is over.
func (s *session) handle(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	case "undo":
		if err := s.match.Undo(); err != nil {
			fmt.Fprintf(s.out, "Cannot undo: %v\n", err)
			return false
		}
		fmt.Fprint(s.out, s.match.Render())
		return false
	case "moves":
		s.printMoves()
		return false
	case "scores":
		white, black := s.match.Scores()
		fmt.Fprintf(s.out, "White %d, Black %d\n", white, black)
		return false
	case "history":
		s.printHistory()
		return false
	case "fen":
		fmt.Fprintln(s.out, s.match.FEN())
		return false
	case "export":
		s.printExport()
		return false
	case "pgn":
		if err := output.WritePGN(s.out, s.match, nil); err != nil {
			fmt.Fprintf(s.out, "Cannot write PGN: %v\n", err)
		}
		return false
	case "json":
		if err := output.WriteJSON(s.out, s.match); err != nil {
			fmt.Fprintf(s.out, "Cannot write JSON: %v\n", err)
		}
		return false
	case "board":
		fmt.Fprint(s.out, s.match.Render())
		return false
	case "help":
		fmt.Fprintf(s.out, "Enter a move (Nf3, e2e4) or one of: %s\n", commandList)
		return false
	}

	outcome, err := s.match.Play(line)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid move! %v\n", err)
		return false
	}
	fmt.Fprint(s.out, s.match.Render())
	if outcome != game.OutcomeSuccess {
		fmt.Fprintf(s.out, "%v\n", outcome)
	}
	return outcome.IsTerminal()
}

func (s *session) printMoves() {
	var sans []string
	for _, mv := range s.match.LegalMoves() {
		sans = append(sans, s.match.SAN(mv))
	}
	fmt.Fprintf(s.out, "%d moves: %s\n", len(sans), strings.Join(sans, " "))
}

func (s *session) printHistory() {
	for i, san := range s.match.Notations() {
		if i%2 == 0 {
			fmt.Fprintf(s.out, "%d. %s", i/2+1, san)
		} else {
			fmt.Fprintf(s.out, " %s\n", san)
		}
	}
	if len(s.match.Notations())%2 == 1 {
		fmt.Fprintln(s.out)
	}
}

func (s *session) printExport() {
	grid := s.match.ExportBoard()
	for rank := len(grid) - 1; rank >= 0; rank-- {
		for file := range grid {
			fmt.Fprintf(s.out, "%3d", grid[file][rank])
		}
		fmt.Fprintln(s.out)
	}
}
