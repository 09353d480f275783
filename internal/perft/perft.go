// Package perft counts the leaf nodes of the pseudo-legal move tree, the
// standard way to verify move generation against known node counts.
package perft

import "github.com/l3kn/chesscore/internal/board"

// Perft counts leaf nodes at the given depth from b. Depth 0 counts b itself.
// Every move is applied to a copy, so b is never modified.
func Perft(b *board.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := b.GenerateMoves(b.Turn)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for _, m := range moves.Slice() {
		child := b.Copy()
		child.MakeMove(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Entry is the node count below a single root move.
type Entry struct {
	Move  board.Move
	Nodes uint64
}

// Divide returns the node count below each root move, in generation order.
func Divide(b *board.Board, depth int) []Entry {
	if depth <= 0 {
		return nil
	}

	moves := b.GenerateMoves(b.Turn)
	entries := make([]Entry, 0, moves.Len())
	for _, m := range moves.Slice() {
		child := b.Copy()
		child.MakeMove(m)
		entries = append(entries, Entry{Move: m, Nodes: Perft(child, depth-1)})
	}
	return entries
}

// Total sums the node counts of a divide.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}
