package kmap

// Bounds returns the bounding rectangle of a block with exclusive upper
// corners. The empty block yields the zero Rect.
func Bounds(b Block) Rect {
	if len(b) == 0 {
		return Rect{}
	}
	r := Rect{X1: b[0].X, Y1: b[0].Y, X2: b[0].X, Y2: b[0].Y}
	for _, c := range b[1:] {
		r.X1 = min(r.X1, c.X)
		r.Y1 = min(r.Y1, c.Y)
		r.X2 = max(r.X2, c.X)
		r.Y2 = max(r.Y2, c.Y)
	}
	r.X2++
	r.Y2++
	return r
}

// Classify decomposes group into islands (see Blocks) and returns one
// Boundary per island, in the same order.
//
// A side is open when the group carries on across the map edge behind it:
//
//	left   X1 == 0      and cell (width-1, Y1) is in the group
//	right  X2 == width  and cell (0, Y1)       is in the group
//	top    Y1 == 0      and cell (X1, height-1) is in the group
//	bottom Y2 == height and cell (X1, 0)       is in the group
//
// The mirrored cell is checked against the whole group, not the island, so the
// two halves of a group split by the wraparound open towards each other. An
// island spanning a whole axis finds itself behind both edges and opens both.
//
// Complexity: O(|G|).
func Classify(group []int, width, height int) []Boundary {
	if len(group) == 0 {
		return nil
	}
	member := make(map[int]struct{}, len(group))
	for _, i := range group {
		member[i] = struct{}{}
	}
	in := func(x, y int) bool {
		_, ok := member[CoordinateToIndex(x, y)]
		return ok
	}

	blocks := Blocks(group)
	out := make([]Boundary, 0, len(blocks))
	for _, b := range blocks {
		r := Bounds(b)
		var open Edge
		if r.X1 == 0 && in(width-1, r.Y1) {
			open |= EdgeLeft
		}
		if r.X2 == width && in(0, r.Y1) {
			open |= EdgeRight
		}
		if r.Y1 == 0 && in(r.X1, height-1) {
			open |= EdgeTop
		}
		if r.Y2 == height && in(r.X1, 0) {
			open |= EdgeBottom
		}
		out = append(out, Boundary{Rect: r, Open: open})
	}
	return out
}
