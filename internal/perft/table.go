package perft

import "github.com/l3kn/chesscore/internal/board"

type tableKey struct {
	hash  uint64
	depth int
}

// Table memoizes subtree counts by Zobrist hash and remaining depth.
// A Table is not safe for concurrent use.
type Table struct {
	entries map[tableKey]uint64
	Hits    uint64
	Misses  uint64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[tableKey]uint64)}
}

// Len returns the number of stored subtrees.
func (t *Table) Len() int {
	return len(t.entries)
}

// Perft counts leaf nodes like the package-level Perft, reusing counts of
// transposed subtrees.
func (t *Table) Perft(b *board.Board, depth int) uint64 {
	if depth <= 1 {
		return Perft(b, depth)
	}

	key := tableKey{hash: b.Hash(), depth: depth}
	if n, ok := t.entries[key]; ok {
		t.Hits++
		return n
	}
	t.Misses++

	var nodes uint64
	for _, m := range b.GenerateMoves(b.Turn).Slice() {
		child := b.Copy()
		child.MakeMove(m)
		nodes += t.Perft(child, depth-1)
	}

	t.entries[key] = nodes
	return nodes
}
