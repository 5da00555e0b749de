package kmap

import "slices"

// Group is an ordered list of distinct indices forming one marking.
// The caller owns the backing array; Expand and Shrink rewrite it in place.
//
// A group built only through Expand (starting from one index, always along a
// bit returned by DifferentBit) is a sub-cube of the index space: 2^k cells
// forming one or more power-of-two rectangles on the map. Neither method
// checks this; use Validate when the history is unknown.
type Group []int

// Expand appends a copy of every element with bit flipped, doubling the
// group. Order is kept: the first half is the old group, the second half its
// mirror image across bit. Nothing is deduplicated.
// Complexity: O(|G|).
func (g *Group) Expand(bit int) {
	mask := 1 << bit
	for _, v := range *g {
		*g = append(*g, v^mask)
	}
}

// Shrink undoes the Expand that produced the half of the group not holding
// index. It splits the list at len/2, finds index's first neighbour in the
// opposite half, and keeps the elements of index's own half that agree with
// index on the bit separating the two. On a group built by Expand this halves
// it and restores its previous contents.
//
// Shrink reports false and leaves the group untouched when the group has
// fewer than two elements, does not contain index, or the opposite half holds
// no neighbour of index (the group was not built by Expand).
// Complexity: O(|G|).
func (g *Group) Shrink(index int) bool {
	cur := *g
	if len(cur) < 2 {
		return false
	}
	pos := slices.Index(cur, index)
	if pos < 0 {
		return false
	}

	mid := len(cur) / 2
	own, other := cur[:mid], cur[mid:]
	if pos >= mid {
		own, other = other, own
	}
	bit, ok := DifferentBit(index, other)
	if !ok {
		return false
	}

	mask := 1 << bit
	keep := index & mask
	// writes trail reads, so compacting into cur is safe for either half
	out := cur[:0]
	for _, v := range own {
		if v&mask == keep {
			out = append(out, v)
		}
	}
	*g = out
	return true
}

// Contains reports whether index is a member.
func (g Group) Contains(index int) bool {
	return slices.Contains(g, index)
}

// Clone returns an independent copy.
func (g Group) Clone() Group {
	return slices.Clone(g)
}
