package kmap

import (
	"fmt"
	"math/bits"
)

// Validate checks that group is a well-formed K-map group for n variables:
// every index lies in [0, 2ⁿ), no index repeats, and the members form a
// sub-cube of the index space, i.e. |G| = 2^k and all members agree on every
// bit except k free ones. That is exactly the set of shapes reachable from a
// single cell through Expand.
//
// The empty group is valid. Expand and Shrink never call Validate.
//
// Returns ErrVarCount, ErrIndexRange, ErrDuplicateIndex or ErrNotRectangular.
// Complexity: O(|G|).
func Validate(group []int, n int) error {
	if n < 1 || n > MaxVars {
		return fmt.Errorf("Validate: n=%d: %w", n, ErrVarCount)
	}
	if len(group) == 0 {
		return nil
	}
	limit := 1 << n
	seen := make(map[int]struct{}, len(group))
	var free uint // bits on which some member differs from group[0]
	for _, i := range group {
		if i < 0 || i >= limit {
			return fmt.Errorf("Validate: index %d with %d vars: %w", i, n, ErrIndexRange)
		}
		if _, dup := seen[i]; dup {
			return fmt.Errorf("Validate: index %d: %w", i, ErrDuplicateIndex)
		}
		seen[i] = struct{}{}
		free |= uint(i ^ group[0])
	}
	// distinct members agreeing outside free: at most 2^|free| of them,
	// exactly that many iff every combination of the free bits is present
	if len(group) != 1<<bits.OnesCount(free) {
		return fmt.Errorf("Validate: %d cells over %d free bits: %w",
			len(group), bits.OnesCount(free), ErrNotRectangular)
	}
	return nil
}
