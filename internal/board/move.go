package board

import "fmt"

// Move encodes a move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-15: reserved for a promotion piece; never set.
//
// Promotion is not implemented: a pawn reaching the last rank stays a pawn.
type Move uint16

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type. Always NoPieceType.
func (m Move) Promotion() PieceType {
	return NoPieceType
}

// IsPromotion reports whether the move promotes. Always false.
func (m Move) IsPromotion() bool {
	return false
}

// String returns the move as "E2 -> E4".
func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.From(), m.To())
}

// UCI returns the move in coordinate notation (e.g. "e2e4").
func (m Move) UCI() string {
	from, to := m.From(), m.To()
	return fmt.Sprintf("%c%c%c%c",
		'a'+from.File(), '1'+from.Rank(),
		'a'+to.File(), '1'+to.Rank())
}

// MoveList is an append-only list of moves.
type MoveList struct {
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 256)}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.moves {
		if x == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}
