package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     chess.Move
		player   chess.Player
		wantFEN  string
		captured chess.Kind
	}{
		{
			name:    "pawn double step",
			fen:     InitialFEN,
			move:    mv("e2", "e4"),
			player:  chess.White,
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		},
		{
			name:    "castle kingside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    mv("e1", "g1"),
			player:  chess.White,
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1",
		},
		{
			name:    "castle queenside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    mv("e8", "c8"),
			player:  chess.Black,
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R",
		},
		{
			name:     "en passant",
			fen:      "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move:     mv("e5", "d6"),
			player:   chess.White,
			wantFEN:  "4k3/8/3P4/8/8/8/8/4K3",
			captured: chess.Pawn,
		},
		{
			name:     "promotion with capture",
			fen:      "2r1k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			move:     chess.Move{From: sq("b7"), To: sq("c8"), Promotion: chess.Knight},
			player:   chess.White,
			wantFEN:  "2N1k3/8/8/8/8/8/8/4K3",
			captured: chess.Rook,
		},
		{
			name:    "promotion choice ignored off the last rank",
			fen:     InitialFEN,
			move:    chess.Move{From: sq("d2"), To: sq("d3"), Promotion: chess.Queen},
			player:  chess.White,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/3P4/PPP1PPPP/RNBQKBNR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := mustSetup(t, tt.fen)
			captured, stored, err := Apply(setup.Board, setup.Recent, tt.player, tt.move)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if captured.Kind != tt.captured {
				t.Errorf("captured = %v, want %v", captured.Kind, tt.captured)
			}
			if !IsPromotion(chess.Piece{Kind: chess.Pawn, Owner: tt.player}, tt.move.To) && stored.Promotion != chess.Empty {
				t.Errorf("stored promotion = %v, want none", stored.Promotion)
			}
			got := BoardToFEN(setup.Board, tt.player.Opponent(), nil, 0, 1)
			if diff := cmp.Diff(tt.wantFEN, got[:len(tt.wantFEN)]); diff != "" {
				t.Errorf("placement mismatch (-want +got):\n%s", diff)
			}
			if err := setup.Board.CheckInvariants(); err != nil {
				t.Errorf("CheckInvariants() = %v", err)
			}
		})
	}
}

func TestApply_MarksMoved(t *testing.T) {
	setup := mustSetup(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if _, _, err := Apply(setup.Board, nil, chess.White, mv("e1", "g1")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	for _, s := range []string{"g1", "f1"} {
		if p := setup.Board.PieceAt(sq(s)); !p.HasMoved {
			t.Errorf("%v not marked as moved", p)
		}
	}
	if p := setup.Board.PieceAt(sq("a1")); p.HasMoved {
		t.Errorf("%v marked as moved", p)
	}
}

func TestApply_PromotedPieceJoinsInventoryLast(t *testing.T) {
	setup := mustSetup(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	mv := chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Queen}
	if _, _, err := Apply(setup.Board, nil, chess.White, mv); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	pieces := setup.Board.Pieces(chess.White)
	last := pieces[len(pieces)-1]
	if last.Kind != chess.Queen || last.Pos != sq("a8") || !last.HasMoved {
		t.Errorf("last inventory entry = %+v, want moved queen on a8", last)
	}
	if got := setup.Board.Material(chess.White); got != 109 {
		t.Errorf("Material(White) = %d, want 109", got)
	}
}

func TestApply_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    chess.Move
		player  chess.Player
		wantErr error
	}{
		{"empty square", InitialFEN, mv("e4", "e5"), chess.White, chesserrors.ErrIllegalMove},
		{"opponent's piece", InitialFEN, mv("e7", "e5"), chess.White, chesserrors.ErrIllegalMove},
		{"same square", InitialFEN, mv("e2", "e2"), chess.White, chesserrors.ErrIllegalMove},
		{"off the board", InitialFEN, chess.Move{From: sq("e2"), To: chess.Pos(4, 8)}, chess.White, chesserrors.ErrIllegalMove},
		{"bad geometry", InitialFEN, mv("e2", "e5"), chess.White, chesserrors.ErrIllegalMove},
		{"leaves king in check", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", mv("e2", "d3"), chess.White, chesserrors.ErrIllegalMove},
		{"promotion without choice", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", mv("a7", "a8"), chess.White, chesserrors.ErrIllegalPromotion},
		{"promotion to king", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.King}, chess.White, chesserrors.ErrIllegalPromotion},
		{"promotion to pawn", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Pawn}, chess.White, chesserrors.ErrIllegalPromotion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := mustSetup(t, tt.fen)
			before := setup.Board.Grid()
			_, _, err := Apply(setup.Board, setup.Recent, tt.player, tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(before, setup.Board.Grid()); diff != "" {
				t.Errorf("board changed by rejected move (-before +after):\n%s", diff)
			}
		})
	}
}
