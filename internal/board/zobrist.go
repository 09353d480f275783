package board

// Zobrist hash keys for board hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [13][64]uint64 // [Piece][Square]; row NoPiece stays zero
	zobristEnPassant  [2][8]uint64   // [Color that created the target][File]
	zobristSideToMove uint64         // XOR when black to move
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for p := WhitePawn; p <= BlackKing; p++ {
		for sq := A1; sq <= H8; sq++ {
			zobristPiece[p][sq] = rng.next()
		}
	}

	for c := White; c <= Black; c++ {
		for file := 0; file < 8; file++ {
			zobristEnPassant[c][file] = rng.next()
		}
	}

	zobristSideToMove = rng.next()
}

// Hash computes the Zobrist hash of the board from scratch. Two boards with
// equal hashes generate the same moves with overwhelming probability.
func (b *Board) Hash() uint64 {
	var hash uint64

	for sq, p := range b.squares {
		hash ^= zobristPiece[p][sq]
	}

	if b.Turn == Black {
		hash ^= zobristSideToMove
	}

	for c := White; c <= Black; c++ {
		if ep := b.EnPassant[c]; ep != NoSquare {
			hash ^= zobristEnPassant[c][ep.File()]
		}
	}

	return hash
}
