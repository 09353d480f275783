package bitscan

import (
	"errors"
	"fmt"
)

var (
	// ErrCollision is returned when two single-bit inputs hash to the same index.
	ErrCollision = errors.New("bitscan: magic collision")

	// ErrNoMagic is returned when the search space is exhausted.
	ErrNoMagic = errors.New("bitscan: no magic found")
)

func hash(b, magic uint64) uint64 {
	return (b * magic) >> shift
}

// BuildTable derives the lookup table for magic. Every 1<<i must hash to its
// own slot; otherwise an error wrapping ErrCollision names both bits.
func BuildTable(magic uint64) ([64]uint8, error) {
	var db [64]uint8
	var used [64]bool
	var owner [64]int

	for i := 0; i < 64; i++ {
		h := hash(1<<uint(i), magic)
		if used[h] {
			return db, fmt.Errorf("%w: bits %d and %d share index %d for magic %#016x",
				ErrCollision, owner[h], i, h, magic)
		}
		used[h] = true
		owner[h] = i
		db[h] = uint8(i)
	}

	return db, nil
}

// Verify checks that db is the lookup table for magic.
func Verify(magic uint64, db [64]uint8) error {
	built, err := BuildTable(magic)
	if err != nil {
		return err
	}
	for i := range built {
		if built[i] != db[i] {
			return fmt.Errorf("bitscan: table entry %d is %d, magic %#016x needs %d",
				i, db[i], magic, built[i])
		}
	}
	return nil
}

// FindMagic searches for a multiplier whose 6-bit windows are all distinct.
//
// Hashing 1<<k reads bits 58-k..63-k of the magic, so fixing the magic one bit
// at a time from bit 0 upwards fixes one more window per step. The search is a
// depth-first walk over those bits, preferring ones.
func FindMagic() (uint64, error) {
	var used [64]bool
	magic, ok := searchMagic(0, 0, &used)
	if !ok {
		return 0, ErrNoMagic
	}
	return magic, nil
}

func searchMagic(magic uint64, bit int, used *[64]bool) (uint64, bool) {
	if bit == 64 {
		return magic, true
	}

	// Start from an all-zero window so the ones-first walk never dead-ends.
	candidates := [2]uint64{1, 0}
	if bit == 0 {
		candidates = [2]uint64{0, 1}
	}

	for _, c := range candidates {
		m := magic | c<<uint(bit)
		h := hash(1<<uint(63-bit), m)
		if used[h] {
			continue
		}
		used[h] = true
		if found, ok := searchMagic(m, bit+1, used); ok {
			return found, true
		}
		used[h] = false
	}

	return 0, false
}
