package kmap

import (
	"iter"
	"math/bits"
)

// IsNeighbour reports whether a and b differ in exactly one bit, i.e. whether
// their cells touch on the map (wraparound included).
func IsNeighbour(a, b int) bool {
	return bits.OnesCount(uint(a^b)) == 1
}

// Neighbours lazily yields the elements of others that are neighbours of
// index, in input order.
func Neighbours(index int, others []int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, o := range others {
			if IsNeighbour(index, o) && !yield(o) {
				return
			}
		}
	}
}

// DifferentBits returns the positions where a and b differ, ascending.
func DifferentBits(a, b int) []int {
	diff := uint(a ^ b)
	out := make([]int, 0, bits.OnesCount(diff))
	for diff != 0 {
		bit := bits.TrailingZeros(diff)
		out = append(out, bit)
		diff &= diff - 1
	}
	return out
}

// DifferentBit returns the bit separating index from its first neighbour in
// others. ok is false when others holds no neighbour of index.
// Only the first neighbour is inspected.
func DifferentBit(index int, others []int) (bit int, ok bool) {
	for n := range Neighbours(index, others) {
		return bits.TrailingZeros(uint(index ^ n)), true
	}
	return -1, false
}
