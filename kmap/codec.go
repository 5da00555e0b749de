package kmap

import "fmt"

// ToGray returns the reflected binary Gray code of v.
func ToGray(v int) int {
	return v ^ (v >> 1)
}

// FromGray inverts ToGray: FromGray(ToGray(v)) == v for every v ≥ 0.
func FromGray(v int) int {
	ret := v
	for v != 0 {
		v >>= 1
		ret ^= v
	}
	return ret
}

// Interleave weaves two values bit by bit: even supplies bits 0, 2, 4, …
// of the result and odd supplies bits 1, 3, 5, …. The shorter operand is
// treated as zero-extended.
// Complexity: O(max(bitlen(even), bitlen(odd))).
func Interleave(even, odd int) int {
	ret, shift := 0, 0
	for even != 0 || odd != 0 {
		ret |= (even & 1) << shift
		ret |= (odd & 1) << (shift + 1)
		even >>= 1
		odd >>= 1
		shift += 2
	}
	return ret
}

// Deinterleave is the inverse of Interleave.
func Deinterleave(v int) (even, odd int) {
	for shift := 0; v != 0; shift++ {
		even |= (v & 1) << shift
		odd |= ((v >> 1) & 1) << shift
		v >>= 2
	}
	return even, odd
}

// CoordinateToIndex maps the cell (x, y) to its truth-table index.
// x and y must be non-negative; the result is undefined otherwise.
func CoordinateToIndex(x, y int) int {
	return Interleave(ToGray(x), ToGray(y))
}

// IndexToCoordinate maps a truth-table index to its cell.
// index must be non-negative.
func IndexToCoordinate(index int) (x, y int) {
	gx, gy := Deinterleave(index)
	return FromGray(gx), FromGray(gy)
}

// Dimensions returns the grid size for n variables:
// width = 2^⌈n/2⌉, height = 2^⌊n/2⌋. n must be ≥ 0.
func Dimensions(n int) (width, height int) {
	return 1 << ((n + 1) / 2), 1 << (n / 2)
}

// NewGrid validates n and returns the matching Grid.
// Returns ErrVarCount if n is outside [1, MaxVars].
func NewGrid(n int) (Grid, error) {
	if n < 1 || n > MaxVars {
		return Grid{}, fmt.Errorf("NewGrid(%d): %w", n, ErrVarCount)
	}
	w, h := Dimensions(n)
	return Grid{Vars: n, Width: w, Height: h}, nil
}

// Cells returns the number of cells, 2ⁿ.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index is the checked form of CoordinateToIndex.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g Grid) Index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return -1, fmt.Errorf("Index(%d,%d) on %dx%d: %w", x, y, g.Width, g.Height, ErrOutOfBounds)
	}
	return CoordinateToIndex(x, y), nil
}

// Coordinate is the checked form of IndexToCoordinate.
// Returns ErrIndexRange for indices outside [0, 2ⁿ).
func (g Grid) Coordinate(index int) (Coord, error) {
	if index < 0 || index >= g.Cells() {
		return Coord{}, fmt.Errorf("Coordinate(%d) with %d vars: %w", index, g.Vars, ErrIndexRange)
	}
	x, y := IndexToCoordinate(index)
	return Coord{X: x, Y: y}, nil
}

// Classify is Classify(group, g.Width, g.Height).
func (g Grid) Classify(group []int) []Boundary {
	return Classify(group, g.Width, g.Height)
}
