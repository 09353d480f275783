// Command perft counts pseudo-legal move tree leaves from a position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"

	"github.com/l3kn/chesscore/internal/board"
	"github.com/l3kn/chesscore/internal/perft"
	"github.com/l3kn/chesscore/internal/storage"
)

var (
	fen        = flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth      = flag.Int("depth", 3, "Perft depth")
	divide     = flag.Bool("divide", false, "Print per-move node counts at root")
	parallel   = flag.Int("parallel", 0, "Split root moves across N workers (0 = serial, -1 = GOMAXPROCS)")
	hashTable  = flag.Bool("hash", false, "Reuse counts of transposed subtrees")
	repeat     = flag.Int("repeat", 1, "Repeat perft N times and report aggregate")
	useCache   = flag.Bool("cache", false, "Read and store results in the perft cache")
	cacheDir   = flag.String("cachedir", "", "Perft cache directory (defaults to $CHESSCORE_CACHE_DIR or the user cache dir)")
	profMode   = flag.String("profile", "", "Profile the run: cpu or mem")
	show       = flag.Bool("show", false, "Print the board before counting")
	debugMoves = flag.Bool("debug", false, "Log move generation diagnostics")
	listCache  = flag.Bool("listcache", false, "Print every cached result and exit")
	clearCache = flag.Bool("clearcache", false, "Remove every cached result and exit")
)

func main() {
	flag.Parse()

	if err := checkArgs(*depth, *repeat); err != nil {
		log.Fatal(err)
	}

	if *listCache || *clearCache {
		if err := runCacheCommand(); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Profiling mode can come from the flag or the environment.
	mode := *profMode
	if mode == "" {
		mode = os.Getenv("CHESSCORE_PROFILE")
	}
	switch mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q (want cpu or mem)", mode)
	}

	board.DebugMoveValidation = *debugMoves

	b, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("ParseFEN error: %v", err)
	}

	if *show {
		fmt.Print(b)
		if b.InCheck(b.Turn) {
			fmt.Printf("%s is in check\n", b.Turn)
		}
		fmt.Println()
	}

	if *divide {
		runDivide(b)
		return
	}

	var cache *storage.Storage
	if *useCache {
		cache, err = openCache()
		if err != nil {
			log.Fatalf("could not open perft cache: %v", err)
		}
		defer cache.Close()

		key := b.ToFEN()
		if r, ok, err := cache.LoadResult(key, *depth); err != nil {
			log.Printf("Warning: perft cache read failed: %v", err)
		} else if ok {
			fmt.Printf("%d \t%d \t(cached %s, took %s)\n", r.Depth, r.Nodes, r.RecordedAt.Format(time.RFC3339), r.Elapsed)
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var totalNodes, nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes, err = count(ctx, b)
		if err != nil {
			log.Fatalf("perft aborted: %v", err)
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, nodes, elapsed, nps)

	if cache != nil {
		r := &storage.PerftResult{
			FEN:     b.ToFEN(),
			Depth:   *depth,
			Nodes:   nodes,
			Elapsed: elapsed / time.Duration(*repeat),
		}
		if err := cache.SaveResult(r); err != nil {
			log.Printf("Warning: perft cache write failed: %v", err)
		}
	}
}

// checkArgs rejects flag values that cannot produce a node count.
func checkArgs(depth, repeat int) error {
	if depth < 0 {
		return errors.New("-depth must be >= 0")
	}
	if repeat < 1 {
		return errors.New("-repeat must be >= 1")
	}
	return nil
}

func runCacheCommand() error {
	cache, err := openCache()
	if err != nil {
		return fmt.Errorf("could not open perft cache: %w", err)
	}
	defer cache.Close()

	if *clearCache {
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("clear perft cache: %w", err)
		}
		log.Printf("perft cache cleared")
	}
	if *listCache {
		return printResults(os.Stdout, cache)
	}
	return nil
}

// printResults writes one line per cached result: depth, nodes, time, FEN.
func printResults(w io.Writer, cache *storage.Storage) error {
	results, err := cache.Results()
	if err != nil {
		return fmt.Errorf("list perft cache: %w", err)
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%d \t%d \t%s \t%s\n", r.Depth, r.Nodes, r.Elapsed, r.FEN); err != nil {
			return err
		}
	}
	return nil
}

func count(ctx context.Context, b *board.Board) (uint64, error) {
	switch {
	case *parallel != 0:
		return perft.Parallel(ctx, b, *depth, *parallel)
	case *hashTable:
		t := perft.NewTable()
		n := t.Perft(b, *depth)
		log.Printf("hash table: %d entries, %d hits, %d misses", t.Len(), t.Hits, t.Misses)
		return n, nil
	default:
		return perft.Perft(b, *depth), nil
	}
}

func runDivide(b *board.Board) {
	entries := perft.Divide(b, *depth)
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move.UCI(), e.Nodes)
	}
	fmt.Printf("Total: %d\n", perft.Total(entries))
}

func openCache() (*storage.Storage, error) {
	if *cacheDir != "" {
		return storage.Open(*cacheDir)
	}
	return storage.NewStorage()
}
