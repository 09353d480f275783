package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/l3kn/chesscore/internal/board"
	"github.com/l3kn/chesscore/internal/storage"
)

func TestCheckArgs(t *testing.T) {
	tests := []struct {
		name    string
		depth   int
		repeat  int
		wantErr bool
	}{
		{"defaults", 3, 1, false},
		{"depth zero", 0, 1, false},
		{"many repeats", 5, 10, false},
		{"negative depth", -1, 1, true},
		{"zero repeat", 2, 0, true},
		{"negative repeat", 2, -3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkArgs(tc.depth, tc.repeat)
			if (err != nil) != tc.wantErr {
				t.Errorf("checkArgs(%d, %d) = %v, wantErr %v", tc.depth, tc.repeat, err, tc.wantErr)
			}
		})
	}
}

func TestPrintResults(t *testing.T) {
	cache, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer cache.Close()

	var out bytes.Buffer
	if err := printResults(&out, cache); err != nil {
		t.Fatalf("printResults on empty cache: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("empty cache printed %q", out.String())
	}

	fen := board.StartingPosition().ToFEN()
	for _, r := range []*storage.PerftResult{
		{FEN: fen, Depth: 3, Nodes: 8902, Elapsed: time.Millisecond},
		{FEN: fen, Depth: 2, Nodes: 400, Elapsed: time.Microsecond},
	} {
		if err := cache.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	if err := printResults(&out, cache); err != nil {
		t.Fatalf("printResults failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "2 \t400 \t") || !strings.HasSuffix(lines[0], fen) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "3 \t8902 \t") {
		t.Errorf("line 1 = %q", lines[1])
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	out.Reset()
	if err := printResults(&out, cache); err != nil {
		t.Fatalf("printResults after Clear: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("cleared cache printed %q", out.String())
	}
}
