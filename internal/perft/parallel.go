package perft

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/l3kn/chesscore/internal/board"
)

// Parallel counts leaf nodes like Perft but splits the root moves across up
// to workers goroutines. Each root move is searched on its own copy of b.
// workers <= 0 uses GOMAXPROCS. Cancelling ctx stops root moves that have not
// started yet and returns ctx's error.
func Parallel(ctx context.Context, b *board.Board, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Perft(b, depth), nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := b.GenerateMoves(b.Turn).Slice()
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range moves {
		child := b.Copy()
		child.MakeMove(m)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = Perft(child, depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes, nil
}
