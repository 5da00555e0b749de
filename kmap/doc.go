// Package kmap is the combinatorial core of a Karnaugh-map editor: it maps
// truth-table indices onto a 2D grid, answers adjacency queries, grows and
// shrinks groups of minterms, and turns a group into drawable rectangles.
//
// What:
//
//   - CoordinateToIndex / IndexToCoordinate: Gray-coded, bit-interleaved
//     bijection between an index in [0, 2ⁿ) and a cell (x, y).
//   - IsNeighbour, Neighbours, DifferentBits, DifferentBit: Hamming-1 queries.
//   - Group.Expand / Group.Shrink: in-place doubling and halving of a group.
//   - Blocks: flood fill of a group into 4-connected islands (no wraparound).
//   - Classify: bounding rectangle + open/closed sides of every island.
//
// Why:
//
//	Each axis is Gray coded, so moving one cell (including the jump from the
//	last column back to the first) flips exactly one bit of the axis value and
//	therefore one bit of the interleaved index. "Differs in one bit" and
//	"adjacent on the torus" are the same relation, which is what a K-map is.
//
// Layout (n variables):
//
//	width  = 2^⌈n/2⌉   x carries index bits 0, 2, 4, …
//	height = 2^⌊n/2⌋   y carries index bits 1, 3, 5, …
//
//	n = 4:     x=0  x=1  x=2  x=3
//	   y=0      0    1    5    4
//	   y=1      2    3    7    6
//	   y=2     10   11   15   14
//	   y=3      8    9   13   12
//
// Complexity:
//
//   - Codec, adjacency:  O(n) per call.
//   - Expand, Shrink:    O(|G|).
//   - Blocks, Classify:  O(|G|) time and memory.
//
// Errors:
//
//   - ErrVarCount: variable count outside [1, MaxVars].
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrIndexRange: index outside [0, 2ⁿ).
//   - ErrDuplicateIndex, ErrNotRectangular: reported by Validate only.
//
// The raw codec and group functions do not validate their input; callers
// check coordinates at the boundary (Grid.Index, Grid.Coordinate) and keep
// groups well formed by only expanding along a bit returned by DifferentBit.
package kmap
