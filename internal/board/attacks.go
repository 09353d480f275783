package board

// ray holds, for one direction, the squares reachable from each square on an
// empty board (excluding the origin).
type ray struct {
	increasing bool
	mask       [64]Bitboard
}

// Pre-computed attack tables.
var (
	rookRays   [4]ray
	bishopRays [4]ray
	queenRays  [8]ray

	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	initRays(rookRays[:], RookDirections[:])
	initRays(bishopRays[:], BishopDirections[:])
	initRays(queenRays[:], QueenDirections[:])
	initLeaper(&knightAttacks, KnightOffsets[:])
	initLeaper(&kingAttacks, KingOffsets[:])
	initPawnAttacks()
}

func initRays(rays []ray, dirs []Direction) {
	for i, d := range dirs {
		rays[i].increasing = d.increasing()
		for sq := A1; sq <= H8; sq++ {
			var mask Bitboard
			for c := sq.Coord().Add(d); c.IsValid(); c = c.Add(d) {
				mask |= SquareBB(c.Square())
			}
			rays[i].mask[sq] = mask
		}
	}
}

func initLeaper(table *[64]Bitboard, offsets []Direction) {
	for sq := A1; sq <= H8; sq++ {
		var mask Bitboard
		for _, d := range offsets {
			if c := sq.Coord().Add(d); c.IsValid() {
				mask |= SquareBB(c.Square())
			}
		}
		table[sq] = mask
	}
}

func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		for _, c := range []Color{White, Black} {
			var mask Bitboard
			for _, df := range []int{-1, 1} {
				if to := sq.Coord().Add(Direction{df, forward(c)}); to.IsValid() {
					mask |= SquareBB(to.Square())
				}
			}
			pawnAttacks[c][sq] = mask
		}
	}
}

// slidingAttacks walks each ray up to and including its first occupied square.
func slidingAttacks(sq Square, occupied Bitboard, rays []ray) Bitboard {
	var attacks Bitboard
	for i := range rays {
		r := &rays[i]
		a := r.mask[sq]
		if blockers := a & occupied; blockers != 0 {
			var first Square
			if r.increasing {
				first = blockers.LSB()
			} else {
				first = blockers.MSB()
			}
			a &^= r.mask[first]
		}
		attacks |= a
	}
	return attacks
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, rookRays[:])
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, bishopRays[:])
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, queenRays[:])
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the diagonal capture squares of a pawn of color c.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// Attacked reports whether any piece of color by attacks sq.
// This is a geometric query; it does not make any move legal or illegal.
func (b *Board) Attacked(sq Square, by Color) bool {
	occupied := b.Occupancy()
	for from, p := range b.Pieces() {
		if p.Color() != by {
			continue
		}
		var attacks Bitboard
		switch p.Type() {
		case Pawn:
			attacks = PawnAttacks(from, by)
		case Knight:
			attacks = KnightAttacks(from)
		case Bishop:
			attacks = BishopAttacks(from, occupied)
		case Rook:
			attacks = RookAttacks(from, occupied)
		case Queen:
			attacks = QueenAttacks(from, occupied)
		case King:
			attacks = KingAttacks(from)
		}
		if attacks.IsSet(sq) {
			return true
		}
	}
	return false
}

// InCheck reports whether c's king is attacked. False if c has no king.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.Attacked(ksq, c.Other())
}
