package bintree

import "errors"

var (
	// ErrNotEnoughLayers indicates a request to remove more layers than the tree has.
	ErrNotEnoughLayers = errors.New("bintree: not enough layers")
	// ErrNegativeLayers indicates a negative layer count.
	ErrNegativeLayers = errors.New("bintree: negative layer count")
)
