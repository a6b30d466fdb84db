package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func sq(s string) chess.Position {
	return chess.MustParseSquare(s)
}

func mustSetup(t testing.TB, fen string) *engine.Setup {
	t.Helper()
	setup, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return setup
}

func TestDecode(t *testing.T) {
	desc := func(kind chess.Kind, dest string) Description {
		return Description{Kind: kind, Dest: sq(dest), FromFile: -1, FromRank: -1}
	}
	tests := []struct {
		in   string
		want Description
	}{
		{"e4", desc(chess.Pawn, "e4")},
		{"Pe4", desc(chess.Pawn, "e4")},
		{"Nf3", desc(chess.Knight, "f3")},
		{"Qh4#", desc(chess.Queen, "h4")},
		{"Bb5+", desc(chess.Bishop, "b5")},
		{"Nf3!?", desc(chess.Knight, "f3")},
		{"exd5", Description{Kind: chess.Pawn, Dest: sq("d5"), FromFile: 4, FromRank: -1, Capture: true}},
		{"Nbd7", Description{Kind: chess.Knight, Dest: sq("d7"), FromFile: 1, FromRank: -1}},
		{"R1e1", Description{Kind: chess.Rook, Dest: sq("e1"), FromFile: -1, FromRank: 0}},
		{"Qh4xe1", Description{Kind: chess.Queen, Dest: sq("e1"), FromFile: 7, FromRank: 3, Capture: true}},
		{"Kxe2", Description{Kind: chess.King, Dest: sq("e2"), FromFile: -1, FromRank: -1, Capture: true}},
		{"e8=Q", Description{Kind: chess.Pawn, Dest: sq("e8"), FromFile: -1, FromRank: -1, Promotion: chess.Queen}},
		{"e8N", Description{Kind: chess.Pawn, Dest: sq("e8"), FromFile: -1, FromRank: -1, Promotion: chess.Knight}},
		{"dxc8=R+", Description{Kind: chess.Pawn, Dest: sq("c8"), FromFile: 3, FromRank: -1, Capture: true, Promotion: chess.Rook}},
		{"O-O", Description{Castle: Kingside, Kind: chess.King, FromFile: -1, FromRank: -1}},
		{"0-0-0", Description{Castle: Queenside, Kind: chess.King, FromFile: -1, FromRank: -1}},
		{"O-O+", Description{Castle: Kingside, Kind: chess.King, FromFile: -1, FromRank: -1}},
		{" Nc3 ", desc(chess.Knight, "c3")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := []string{
		"", "+", "x", "Z9", "e9", "i4", "Nf", "N", "Nxx4", "xd5", "exd",
		"dxe", "Kxe9", "O-O-O-O", "Qe8=Q", "Ke8Q", "abcde4", "e4e5e6",
		"e8=", "Nb1c3d4", "==", "K12",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Decode(in)
			if !errors.Is(err, chesserrors.ErrUnresolvableNotation) {
				t.Errorf("Decode(%q) error = %v, want ErrUnresolvableNotation", in, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	const knights = "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1"
	tests := []struct {
		name     string
		fen      string
		san      string
		from, to string
	}{
		{"pawn push", engine.InitialFEN, "e4", "e2", "e4"},
		{"knight", engine.InitialFEN, "Nc3", "b1", "c3"},
		{"first knight in inventory order", knights, "Nd2", "f3", "d2"},
		{"file disambiguation", knights, "Nbd2", "b1", "d2"},
		{"file disambiguation other knight", knights, "Nfd2", "f3", "d2"},
		{"rank disambiguation", knights, "N1d2", "b1", "d2"},
		{"square disambiguation", knights, "Nb1d2", "b1", "d2"},
		{"capture marker optional", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "ed5", "e4", "d5"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "exd5", "e4", "d5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "exd6", "e5", "d6"},
		{"castle kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O", "e1", "g1"},
		{"castle queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O-O", "e8", "c8"},
		{"pinned knight skipped", "4k3/4r3/8/8/8/4N3/8/N3K3 w - - 0 1", "Nc2", "a1", "c2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := mustSetup(t, tt.fen)
			got, err := ParseSAN(setup.Board, setup.Recent, setup.ToMove, tt.san)
			if err != nil {
				t.Fatalf("ParseSAN(%q) error = %v", tt.san, err)
			}
			if diff := cmp.Diff(chess.NewMove(sq(tt.from), sq(tt.to)), got); diff != "" {
				t.Errorf("ParseSAN(%q) mismatch (-want +got):\n%s", tt.san, diff)
			}
		})
	}
}

func TestResolve_Promotion(t *testing.T) {
	setup := mustSetup(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	got, err := ParseSAN(setup.Board, nil, chess.White, "a8=N")
	if err != nil {
		t.Fatalf("ParseSAN() error = %v", err)
	}
	want := chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Knight}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSAN() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Unresolvable(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
	}{
		{"no piece reaches", engine.InitialFEN, "Nd4"},
		{"blocked bishop", engine.InitialFEN, "Bc4"},
		{"wrong disambiguation", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Ncd2"},
		{"castle not allowed", engine.InitialFEN, "O-O"},
		{"king missing castle rights", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", "O-O"},
		{"pawn capture onto empty square", engine.InitialFEN, "exd3"},
		{"no queen", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "Qd1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := mustSetup(t, tt.fen)
			_, err := ParseSAN(setup.Board, setup.Recent, setup.ToMove, tt.san)
			if !errors.Is(err, chesserrors.ErrUnresolvableNotation) {
				t.Errorf("ParseSAN(%q) error = %v, want ErrUnresolvableNotation", tt.san, err)
			}
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		in   string
		want chess.Move
		ok   bool
	}{
		{"e2e4", chess.NewMove(sq("e2"), sq("e4")), true},
		{"e2-e4", chess.NewMove(sq("e2"), sq("e4")), true},
		{"e2 e4", chess.NewMove(sq("e2"), sq("e4")), true},
		{"e4xd5", chess.NewMove(sq("e4"), sq("d5")), true},
		{"e7e8q", chess.Move{From: sq("e7"), To: sq("e8"), Promotion: chess.Queen}, true},
		{"e7e8=N", chess.Move{From: sq("e7"), To: sq("e8"), Promotion: chess.Knight}, true},
		{"e7e8k", chess.Move{}, false},
		{"e4", chess.Move{}, false},
		{"Nf3", chess.Move{}, false},
		{"e2e9", chess.Move{}, false},
		{"e2e4e5", chess.Move{}, false},
		{"", chess.Move{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCoordinates(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseCoordinates(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCoordinates(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func FuzzDecode(f *testing.F) {
	for _, seed := range []string{"e4", "Nbd7", "exd8=Q#", "O-O-O", "R1e1", "xx"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, text string) {
		d, err := Decode(text)
		if err != nil {
			return
		}
		if d.Castle == NoCastle && !d.Dest.OnBoard() {
			t.Errorf("Decode(%q) returned off-board destination %v", text, d.Dest)
		}
	})
}
