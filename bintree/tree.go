package bintree

import (
	"fmt"
	"slices"
)

// Factory builds the node for a given height.
type Factory[T any] func(height int) T

// ReleaseFunc receives nodes dropped from the tree: the removed roots and
// the nodes of the removed right subtrees.
type ReleaseFunc[T any] func(roots, subtrees []T)

// Tree is a complete binary tree of T.
// The zero value is not usable; create trees with New.
type Tree[T any] struct {
	height  int
	nodes   []T // preorder
	factory Factory[T]
	release ReleaseFunc[T]
}

// New returns an empty tree. release may be nil.
// Panics if factory is nil.
func New[T any](factory Factory[T], release ReleaseFunc[T]) *Tree[T] {
	if factory == nil {
		panic("bintree: New requires a factory")
	}
	if release == nil {
		release = func(_, _ []T) {}
	}
	return &Tree[T]{factory: factory, release: release}
}

// Height returns the number of layers.
func (t *Tree[T]) Height() int { return t.height }

// Len returns the number of nodes, 2^Height()-1.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// AddLayers adds n layers on top of the tree. roots, if given, are used as
// the new roots from the lowest added layer upwards; missing roots come from
// the factory.
// Panics if n < 1 or more than n roots are passed.
func (t *Tree[T]) AddLayers(n int, roots ...T) {
	if n < 1 {
		panic(fmt.Sprintf("bintree: AddLayers(%d): need at least one layer", n))
	}
	if len(roots) > n {
		panic(fmt.Sprintf("bintree: AddLayers(%d): %d roots given", n, len(roots)))
	}
	for k := 0; k < n; k++ {
		h := t.height + k
		var root T
		if k < len(roots) {
			root = roots[k]
		} else {
			root = t.factory(h)
		}
		grown := make([]T, 0, 2*len(t.nodes)+1)
		grown = append(grown, root)
		grown = append(grown, t.nodes...)
		t.nodes = t.appendSubtree(grown, h-1)
	}
	t.height += n
}

// appendSubtree appends a full subtree whose root has height h, in preorder.
func (t *Tree[T]) appendSubtree(dst []T, h int) []T {
	if h < 0 {
		return dst
	}
	stack := []int{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dst = append(dst, t.factory(cur))
		if cur > 0 {
			stack = append(stack, cur-1, cur-1)
		}
	}
	return dst
}

// RemoveLayers removes the top n layers. Each removed root goes out together
// with its right subtree through the release callback, in one call.
// Returns ErrNotEnoughLayers if n exceeds Height and ErrNegativeLayers if n < 0.
func (t *Tree[T]) RemoveLayers(n int) error {
	if n < 0 {
		return fmt.Errorf("RemoveLayers(%d): %w", n, ErrNegativeLayers)
	}
	if n > t.height {
		return fmt.Errorf("RemoveLayers(%d) on height %d: %w", n, t.height, ErrNotEnoughLayers)
	}
	if n == 0 {
		return nil
	}
	roots := make([]T, 0, n)
	var subtrees []T
	rest := t.nodes
	for k := 0; k < n; k++ {
		roots = append(roots, rest[0])
		rest = rest[1:]
		half := len(rest) / 2
		subtrees = append(subtrees, rest[half:]...)
		rest = rest[:half]
	}
	t.nodes = slices.Clone(rest)
	t.height -= n
	t.release(roots, subtrees)
	return nil
}

// Resize adds or removes layers until the tree has the given height.
// roots are passed to AddLayers when the tree grows and ignored otherwise.
func (t *Tree[T]) Resize(height int, roots ...T) error {
	switch {
	case height < 0:
		return fmt.Errorf("Resize(%d): %w", height, ErrNegativeLayers)
	case height > t.height:
		t.AddLayers(height-t.height, roots...)
	case height < t.height:
		return t.RemoveLayers(t.height - height)
	}
	return nil
}

// Clear empties the tree. The release callback gets the left spine as roots
// and everything else as subtrees.
func (t *Tree[T]) Clear() {
	if t.height == 0 {
		return
	}
	_ = t.RemoveLayers(t.height)
}

// Layers returns the nodes grouped by layer, root first, each layer left to
// right.
func (t *Tree[T]) Layers() [][]T {
	if t.height == 0 {
		return nil
	}
	out := make([][]T, 0, t.height)
	idx := []int{0}
	for h := t.height - 1; h >= 0; h-- {
		layer := make([]T, len(idx))
		next := make([]int, 0, 2*len(idx))
		for j, i := range idx {
			layer[j] = t.nodes[i]
			if h > 0 {
				next = append(next, i+1, i+(1<<h))
			}
		}
		out = append(out, layer)
		idx = next
	}
	return out
}

// Layer returns the nodes of the given height, left to right, or nil when
// the height is out of range.
func (t *Tree[T]) Layer(height int) []T {
	if height < 0 || height >= t.height {
		return nil
	}
	return t.Layers()[t.height-1-height]
}
