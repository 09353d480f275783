package perft

import (
	"context"
	"errors"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/l3kn/chesscore/internal/board"
)

// TestPerftStartingPosition tests move generation from the starting position.
// Within three plies no check or pin is possible, so the pseudo-legal counts
// equal the published legal ones.
func TestPerftStartingPosition(t *testing.T) {
	pos := board.StartingPosition()

	tests := []struct {
		depth    int
		expected uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPseudoLegal checks a position where king moves into check are
// counted. Legal chess allows only Kd1, Kf1 and Kxe2 here.
func TestPerftPseudoLegal(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 5},
		{2, 72},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassant tests en passant creation and consumption in the tree.
func TestPerftEnPassant(t *testing.T) {
	pos, err := board.ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	if got := Perft(pos, 1); got != 5 {
		t.Errorf("perft(1) = %d, want 5", got)
	}
	if got := Perft(pos, 2); got != 19 {
		t.Errorf("perft(2) = %d, want 19", got)
	}
}

func TestPerftDoesNotMutate(t *testing.T) {
	pos := board.StartingPosition()
	pos.MakeMove(board.NewMove(board.E2, board.E4))
	fen, hash := pos.ToFEN(), pos.Hash()

	Perft(pos, 3)

	if pos.ToFEN() != fen || pos.Hash() != hash {
		t.Errorf("board changed by perft: %s, want %s", pos.ToFEN(), fen)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := board.StartingPosition()

	entries := Divide(pos, 3)
	if len(entries) != 20 {
		t.Fatalf("divide entries = %d, want 20", len(entries))
	}
	if got := Total(entries); got != 8902 {
		t.Errorf("divide total = %d, want 8902", got)
	}
	known := map[board.Move]uint64{
		board.NewMove(board.A2, board.A3): 380,
		board.NewMove(board.E2, board.E4): 600,
		board.NewMove(board.G1, board.F3): 440,
	}
	for _, e := range entries {
		if want, ok := known[e.Move]; ok && e.Nodes != want {
			t.Errorf("%v: %d nodes, want %d", e.Move, e.Nodes, want)
		}
	}
	if Divide(pos, 0) != nil {
		t.Error("divide at depth 0 should be empty")
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	for depth := 0; depth <= 3; depth++ {
		want := Perft(pos, depth)
		got, err := Parallel(context.Background(), pos, depth, 4)
		if err != nil {
			t.Fatalf("Parallel(%d) error: %v", depth, err)
		}
		if got != want {
			t.Errorf("Parallel(%d) = %d, want %d", depth, got, want)
		}
	}
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parallel(ctx, board.StartingPosition(), 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestTableMatchesSerial(t *testing.T) {
	pos := board.StartingPosition()
	table := NewTable()

	for depth := 0; depth <= 4; depth++ {
		if got, want := table.Perft(pos, depth), Perft(pos, depth); got != want {
			t.Errorf("table perft(%d) = %d, want %d", depth, got, want)
		}
	}

	hits := table.Hits
	if got := table.Perft(pos, 4); got != Perft(pos, 4) {
		t.Errorf("repeated table perft(4) = %d", got)
	}
	if table.Hits != hits+1 {
		t.Errorf("hits = %d, want %d", table.Hits, hits+1)
	}
}

// dragonPerft counts legal leaf nodes with an independent generator.
func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// TestPerftMatchesDragontooth compares against a legal generator on
// positions without castling, promotion or checks within the searched depth.
func TestPerftMatchesDragontooth(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{board.StartFEN, 3},
		{"4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1", 3},
		{"k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2},
	}

	for _, tc := range tests {
		ref := dragontoothmg.ParseFen(tc.fen)
		want := dragonPerft(&ref, tc.depth)
		if got := Perft(board.MustParseFEN(tc.fen), tc.depth); got != want {
			t.Errorf("%s: perft(%d) = %d, dragontooth %d", tc.fen, tc.depth, got, want)
		}
	}
}

func BenchmarkPerftInitialD4(b *testing.B) {
	pos := board.StartingPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Perft(pos, 4)
	}
}
