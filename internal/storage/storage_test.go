package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

	t.Run("Missing", func(t *testing.T) {
		r, ok, err := s.LoadResult(fen, 3)
		if err != nil {
			t.Fatalf("LoadResult failed: %v", err)
		}
		if ok || r != nil {
			t.Errorf("expected no result, got %+v", r)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		in := &PerftResult{FEN: fen, Depth: 3, Nodes: 8902, Elapsed: 12 * time.Millisecond}
		if err := s.SaveResult(in); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
		if in.RecordedAt.IsZero() {
			t.Error("RecordedAt not set")
		}

		out, ok, err := s.LoadResult(fen, 3)
		if err != nil || !ok {
			t.Fatalf("LoadResult = %v, %v", ok, err)
		}
		if out.Nodes != 8902 || out.Depth != 3 || out.FEN != fen || out.Elapsed != in.Elapsed {
			t.Errorf("loaded %+v, want %+v", out, in)
		}

		if _, ok, _ := s.LoadResult(fen, 2); ok {
			t.Error("depth 2 should not be stored")
		}
	})

	t.Run("ResultsOrdered", func(t *testing.T) {
		if err := s.SaveResult(&PerftResult{FEN: fen, Depth: 2, Nodes: 400}); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
		if err := s.SaveResult(&PerftResult{FEN: fen, Depth: 10, Nodes: 1}); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}

		results, err := s.Results()
		if err != nil {
			t.Fatalf("Results failed: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("got %d results, want 3", len(results))
		}
		for i, want := range []int{2, 3, 10} {
			if results[i].Depth != want {
				t.Errorf("results[%d].Depth = %d, want %d", i, results[i].Depth, want)
			}
		}
	})

	t.Run("Clear", func(t *testing.T) {
		if err := s.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		results, err := s.Results()
		if err != nil {
			t.Fatalf("Results failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("got %d results after Clear", len(results))
		}
	})
}

func TestCacheDir(t *testing.T) {
	t.Run("Override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom")
		t.Setenv(CacheDirEnv, want)

		got, err := CacheDir()
		if err != nil {
			t.Fatalf("CacheDir failed: %v", err)
		}
		if got != want {
			t.Errorf("CacheDir() = %q, want %q", got, want)
		}
		if _, err := os.Stat(got); err != nil {
			t.Errorf("cache directory was not created: %v", err)
		}
	})

	t.Run("UserCache", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CACHE_HOME only applies on linux")
		}
		base := t.TempDir()
		t.Setenv(CacheDirEnv, "")
		t.Setenv("XDG_CACHE_HOME", base)

		got, err := CacheDir()
		if err != nil {
			t.Fatalf("CacheDir failed: %v", err)
		}
		if want := filepath.Join(base, "chesscore", "perft"); got != want {
			t.Errorf("CacheDir() = %q, want %q", got, want)
		}
	})
}

func TestNewStorageUsesCacheDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CacheDirEnv, dir)

	s, err := NewStorage()
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	if err := s.SaveResult(&PerftResult{FEN: "8/8/8/8/8/8/8/8 w - - 0 1", Depth: 1}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reopened.Close()
	if _, ok, err := reopened.LoadResult("8/8/8/8/8/8/8/8 w - - 0 1", 1); err != nil || !ok {
		t.Errorf("LoadResult after reopen = %v, %v", ok, err)
	}
}
