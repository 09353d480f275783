// Package board implements the chess board, move application and
// pseudo-legal move generation on top of occupancy bitboards.
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidSquare is returned for malformed algebraic square notation.
var ErrInvalidSquare = errors.New("invalid square")

// Square is a linear square index (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file of the square (0-7, where 0=A).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank of the square (0-7, where 0 is the first rank).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Coord returns the file/rank pair of the square.
func (sq Square) Coord() Coord {
	return Coord{File: sq.File(), Rank: sq.Rank()}
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g. "E4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'A'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation ("A1".."H8") into a Square.
// Lowercase files are accepted.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	f := s[0]
	if f >= 'a' && f <= 'h' {
		f -= 'a' - 'A'
	}
	file := int(f) - 'A'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(file, rank), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Coord is a (file, rank) pair. It may lie off the board while stepping
// along a direction; IsValid reports whether it is on the board.
type Coord struct {
	File int
	Rank int
}

// NewCoord creates a coordinate from file and rank.
func NewCoord(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// IsValid returns true if both file and rank are in 0..7.
func (c Coord) IsValid() bool {
	return c.File >= 0 && c.File <= 7 && c.Rank >= 0 && c.Rank <= 7
}

// Add steps the coordinate by a direction.
func (c Coord) Add(d Direction) Coord {
	return Coord{File: c.File + d.DFile, Rank: c.Rank + d.DRank}
}

// Square returns the linear index. Only meaningful for valid coordinates.
func (c Coord) Square() Square {
	return NewSquare(c.File, c.Rank)
}

func (c Coord) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return c.Square().String()
}

// Direction is a constant (file, rank) step.
type Direction struct {
	DFile int
	DRank int
}

// increasing reports whether stepping in d always increases the square index.
func (d Direction) increasing() bool {
	return d.DRank*8+d.DFile > 0
}

var (
	North     = Direction{0, 1}
	South     = Direction{0, -1}
	East      = Direction{1, 0}
	West      = Direction{-1, 0}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{-1, 1}
	SouthEast = Direction{1, -1}
	SouthWest = Direction{-1, -1}
)

// Ray directions for sliding pieces.
var (
	RookDirections   = [4]Direction{East, West, North, South}
	BishopDirections = [4]Direction{NorthEast, SouthEast, NorthWest, SouthWest}
	QueenDirections  = [8]Direction{
		East, West, North, South,
		NorthEast, SouthEast, NorthWest, SouthWest,
	}
)

// Leaper offsets.
var (
	KnightOffsets = [8]Direction{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	KingOffsets = [8]Direction{
		South, North, East, West,
		SouthWest, NorthWest, SouthEast, NorthEast,
	}
)
