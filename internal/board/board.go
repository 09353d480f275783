package board

import (
	"fmt"
	"iter"
	"strings"
)

// Board is a 64-square piece array plus side to move and en passant targets.
//
// EnPassant[c] is the square a pawn of the other color may capture onto this
// ply because c just advanced a pawn two squares, or NoSquare. The field is
// cleared once the opponent has made its reply.
//
// Board holds no pointers or slices, so assigning it copies it.
type Board struct {
	squares   [64]Piece
	Turn      Color
	EnPassant [2]Square
}

// NewBoard creates an empty board with white to move.
func NewBoard() *Board {
	return &Board{
		Turn:      White,
		EnPassant: [2]Square{NoSquare, NoSquare},
	}
}

// StartingPosition creates the standard initial position.
func StartingPosition() *Board {
	return MustParseFEN(StartFEN)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Get returns the piece on (file, rank), or NoPiece.
func (b *Board) Get(file, rank int) Piece {
	return b.squares[rank*8+file]
}

// Set places p on (file, rank). NoPiece empties the square.
func (b *Board) Set(file, rank int, p Piece) {
	b.squares[rank*8+file] = p
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SetPiece places p on sq. NoPiece empties the square.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.squares[sq] = p
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq] == NoPiece
}

// Pieces yields every occupied square with its piece, A1 first.
func (b *Board) Pieces() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for sq, p := range b.squares {
			if p == NoPiece {
				continue
			}
			if !yield(Square(sq), p) {
				return
			}
		}
	}
}

// Occupancy returns a mask with one bit per occupied square.
// It is folded from the piece array on every call.
func (b *Board) Occupancy() Bitboard {
	var mask Bitboard
	for sq, p := range b.squares {
		if p != NoPiece {
			mask = mask.Set(Square(sq))
		}
	}
	return mask
}

// OccupancyOf returns a mask of the squares occupied by color c.
func (b *Board) OccupancyOf(c Color) Bitboard {
	var mask Bitboard
	for sq, p := range b.squares {
		if p != NoPiece && p.Color() == c {
			mask = mask.Set(Square(sq))
		}
	}
	return mask
}

// homeRanks masks the rank each color's pawns may double-step from.
var homeRanks = [2]Bitboard{White: Rank2, Black: Rank7}

// homeRank is the rank a pawn of color c may double-step from.
func homeRank(c Color) int {
	return homeRanks[c].LSB().Rank()
}

// forward is the rank step of a pawn of color c.
func forward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// MakeMove applies m in place and passes the turn.
//
// It panics if there is no piece on the origin square. En passant capture and
// creation are both decided against the fields as they were before the move.
func (b *Board) MakeMove(m Move) {
	from, to := m.From(), m.To()
	piece := b.squares[from]
	if piece == NoPiece {
		panic(fmt.Sprintf("board: can't make move %s, there is no piece at %s", m, from))
	}

	us := piece.Color()
	them := us.Other()
	isPawn := piece.Type() == Pawn
	prev := b.EnPassant

	b.squares[to] = piece
	b.squares[from] = NoPiece

	// The captured pawn sits one step behind the target, seen from the capturer.
	if isPawn && to == prev[them] {
		captured := NewSquare(to.File(), to.Rank()-forward(us))
		b.squares[captured] = NoPiece
	}

	b.EnPassant[us] = NoSquare
	if isPawn && from.File() == to.File() &&
		from.Rank() == homeRank(us) && to.Rank() == homeRank(us)+2*forward(us) {
		b.EnPassant[us] = NewSquare(from.File(), homeRank(us)+forward(us))
	}
	b.EnPassant[them] = NoSquare

	b.Turn = b.Turn.Other()
}

// KingSquare returns the square of c's king, or NoSquare.
func (b *Board) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq, p := range b.Pieces() {
		if p == king {
			return sq
		}
	}
	return NoSquare
}

// String renders the board with box-drawing characters, A1 bottom left.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ╔════════╗\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d║", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteString(b.Get(file, rank).String())
		}
		sb.WriteString("║\n")
	}
	sb.WriteString(" ╚════════╝\n")
	sb.WriteString("  ABCDEFGH\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.Turn)
	fmt.Fprintf(&sb, "En passant: %s\n", b.enPassantTarget())
	return sb.String()
}

// enPassantTarget returns whichever en passant field is set, or NoSquare.
func (b *Board) enPassantTarget() Square {
	if b.EnPassant[b.Turn.Other()] != NoSquare {
		return b.EnPassant[b.Turn.Other()]
	}
	return b.EnPassant[b.Turn]
}
