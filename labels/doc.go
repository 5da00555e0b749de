// Package labels lays out the variable bars drawn along the edges of a
// Karnaugh map.
//
// Variable i names bit i of the cell index. Even bits run along the top
// axis and odd bits along the left axis, so axis bit k of the top axis is
// variable 2k and of the left axis variable 2k+1. A bar covers the cells
// whose Gray-coded coordinate has that axis bit set: segments of 2^(k+1)
// cells starting at 2^k + j·2^(k+2), clipped to the axis.
//
// Bar records are pooled per axis in a bintree.Tree, one tree layer per axis
// bit with the leaves holding bit 0, plus one detached record for the
// highest bit whose single bar is cut in half by the axis end. Changing the
// variable count grows or shrinks the trees at the root, so records for the
// low bits survive any resize.
package labels
