package board

import "log"

// DebugMoveValidation enables diagnostic logging during move generation.
var DebugMoveValidation = false

// GenerateMoves returns every pseudo-legal move for color c.
//
// Squares are visited A1..H8 and each piece's moves are appended in the
// order its generator produces them, so the result is deterministic.
// Moves that leave the own king in check are included; castling and
// promotion are not generated.
func (b *Board) GenerateMoves(c Color) *MoveList {
	ml := NewMoveList()

	if DebugMoveValidation && b.KingSquare(c) == NoSquare {
		log.Printf("MOVEGEN: %v has no king on the board, fen=%s", c, b.ToFEN())
	}

	for sq := A1; sq <= H8; sq++ {
		p := b.squares[sq]
		if p == NoPiece || p.Color() != c {
			continue
		}
		switch p.Type() {
		case Pawn:
			b.PawnMoves(ml, sq, c)
		case Knight:
			b.KnightMoves(ml, sq, c)
		case Bishop:
			b.BishopMoves(ml, sq, c)
		case Rook:
			b.RookMoves(ml, sq, c)
		case Queen:
			b.QueenMoves(ml, sq, c)
		case King:
			b.KingMoves(ml, sq, c)
		}
	}

	return ml
}

// addMoves appends a move from `from` to every square in targets.
func addMoves(ml *MoveList, from Square, targets Bitboard) {
	for targets != 0 {
		ml.Add(NewMove(from, targets.PopLSB()))
	}
}

// RookMoves adds rook moves from sq for color c.
func (b *Board) RookMoves(ml *MoveList, sq Square, c Color) {
	addMoves(ml, sq, RookAttacks(sq, b.Occupancy())&^b.OccupancyOf(c))
}

// BishopMoves adds bishop moves from sq for color c.
func (b *Board) BishopMoves(ml *MoveList, sq Square, c Color) {
	addMoves(ml, sq, BishopAttacks(sq, b.Occupancy())&^b.OccupancyOf(c))
}

// QueenMoves adds the union of rook and bishop moves from sq for color c.
func (b *Board) QueenMoves(ml *MoveList, sq Square, c Color) {
	b.RookMoves(ml, sq, c)
	b.BishopMoves(ml, sq, c)
}

// KnightMoves adds knight moves from sq for color c.
func (b *Board) KnightMoves(ml *MoveList, sq Square, c Color) {
	addMoves(ml, sq, KnightAttacks(sq)&^b.OccupancyOf(c))
}

// KingMoves adds king moves from sq for color c. Castling is not generated.
func (b *Board) KingMoves(ml *MoveList, sq Square, c Color) {
	addMoves(ml, sq, KingAttacks(sq)&^b.OccupancyOf(c))
}

// PawnMoves adds pawn moves from sq for color c.
func (b *Board) PawnMoves(ml *MoveList, sq Square, c Color) {
	if c == White {
		b.WhitePawnMoves(ml, sq)
	} else {
		b.BlackPawnMoves(ml, sq)
	}
}

// WhitePawnMoves adds moves of a white pawn on sq. White pawns start on
// rank 2 and advance toward rank 8.
func (b *Board) WhitePawnMoves(ml *MoveList, sq Square) {
	b.pawnMoves(ml, sq, White)
}

// BlackPawnMoves adds moves of a black pawn on sq. Black pawns start on
// rank 7 and advance toward rank 1.
func (b *Board) BlackPawnMoves(ml *MoveList, sq Square) {
	b.pawnMoves(ml, sq, Black)
}

// pawnMoves generates pushes then diagonal captures. A pawn on the last rank
// has no pushes; promotion is not implemented.
func (b *Board) pawnMoves(ml *MoveList, sq Square, us Color) {
	them := us.Other()
	occupied := b.Occupancy()
	dir := Direction{0, forward(us)}

	if one := sq.Coord().Add(dir); one.IsValid() && !occupied.IsSet(one.Square()) {
		ml.Add(NewMove(sq, one.Square()))

		if homeRanks[us].IsSet(sq) {
			if two := one.Add(dir); !occupied.IsSet(two.Square()) {
				ml.Add(NewMove(sq, two.Square()))
			}
		}
	}

	// An empty en passant target counts as a capture square.
	targets := b.OccupancyOf(them)
	if ep := b.EnPassant[them]; ep != NoSquare && !occupied.IsSet(ep) {
		targets |= SquareBB(ep)
	}
	addMoves(ml, sq, PawnAttacks(sq, us)&targets)
}
