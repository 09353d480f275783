package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is returned for malformed FEN input.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN builds a board from a FEN string.
//
// Piece placement ends at the first space. If present, the side-to-move field
// and the en passant field are read as well; castling rights and move clocks
// are ignored. A side-to-move field other than "w" or "b", or an en passant
// square off ranks 3 and 6, is rejected with ErrInvalidFEN.
func ParseFEN(fen string) (*Board, error) {
	b := NewBoard()

	placement, rest, _ := strings.Cut(fen, " ")
	if err := parsePiecePlacement(b, placement); err != nil {
		return nil, err
	}

	fields := strings.Fields(rest)

	if len(fields) > 0 {
		switch fields[0] {
		case "w":
			b.Turn = White
		case "b":
			b.Turn = Black
		default:
			return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, fields[0])
		}
	}

	if len(fields) > 2 && fields[2] != "-" {
		sq, err := ParseSquare(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant field: %w", ErrInvalidFEN, err)
		}
		switch sq.Rank() {
		case 2:
			b.EnPassant[White] = sq
		case 5:
			b.EnPassant[Black] = sq
		default:
			return nil, fmt.Errorf("%w: en passant square %s is not on rank 3 or 6", ErrInvalidFEN, sq)
		}
	}

	return b, nil
}

// MustParseFEN is like ParseFEN but panics on malformed input.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePiecePlacement reads ranks top to bottom into b.
func parsePiecePlacement(b *Board, placement string) error {
	rank, file := 7, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("%w: more than 8 ranks", ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
		default:
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("%w: not a valid piece character: %q", ErrInvalidFEN, c)
			}
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			b.Set(file, rank, piece)
			file++
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the board. Castling is always "-"
// and the move clocks are fixed at "0 1".
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.Get(file, rank)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteString(" - ")
	if ep := b.enPassantTarget(); ep != NoSquare {
		sb.WriteString(strings.ToLower(ep.String()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")

	return sb.String()
}
