package kmap

import "errors"

var (
	// ErrVarCount indicates a variable count outside [1, MaxVars].
	ErrVarCount = errors.New("kmap: variable count out of range")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("kmap: coordinate out of bounds")
	// ErrIndexRange indicates an index outside [0, 2ⁿ).
	ErrIndexRange = errors.New("kmap: index out of range")
	// ErrDuplicateIndex indicates a group listing the same index twice.
	ErrDuplicateIndex = errors.New("kmap: duplicate index in group")
	// ErrNotRectangular indicates a group that is not a valid K-map group.
	ErrNotRectangular = errors.New("kmap: group is not a power-of-two rectangle")
)
