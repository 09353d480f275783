// Package bitscan maps single-bit 64-bit patterns to their bit index using
// multiply-shift hashing into a precomputed 64-entry table.
package bitscan

import "fmt"

// Magic is the multiplier used by Scan. Multiplying 1<<i by Magic and keeping
// the top 6 bits of the product yields a distinct index for every i in 0..63.
const Magic uint64 = 0x07EDD5E59A4E28C2

const shift = 64 - 6

// table maps a hashed index back to the bit position.
var table = [64]uint8{
	63, 0, 58, 1, 59, 47, 53, 2, 60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20, 55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41, 50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12, 44, 24, 15, 8, 23, 7, 6, 5,
}

// Table returns a copy of the lookup table consumed by Scan.
func Table() [64]uint8 {
	return table
}

// Scan returns the index of the only set bit in b.
// It panics if b does not have exactly one bit set.
func Scan(b uint64) int {
	if b == 0 || b&(b-1) != 0 {
		panic(fmt.Sprintf("bitscan: %#016x does not have exactly one bit set", b))
	}
	return int(table[(b*Magic)>>shift])
}

// ScanForward returns the index of the least significant set bit of b.
// It panics if b is zero.
func ScanForward(b uint64) int {
	if b == 0 {
		panic("bitscan: forward scan of empty pattern")
	}
	return Scan(b & -b)
}

// ScanReverse returns the index of the most significant set bit of b.
// It panics if b is zero.
func ScanReverse(b uint64) int {
	if b == 0 {
		panic("bitscan: reverse scan of empty pattern")
	}
	// Smear the top bit downwards, then keep only the top bit.
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return Scan(b ^ (b >> 1))
}
