// Package bintree implements a complete binary tree stored in a flat slice
// in preorder, sized by whole layers.
//
// Heights count from the leaves: leaves have height 0 and the root has
// height Height()-1. A node of height k at slice position i has its left
// child at i+1 and its right child at i+2^k.
//
// The tree only grows and shrinks at the root:
//
//   - AddLayers puts a new root on top. The old tree becomes the root's left
//     subtree and a fresh right subtree of the same height is built with the
//     factory, in preorder.
//   - RemoveLayers drops the root together with its right subtree and hands
//     the dropped nodes to the release callback. The left subtree becomes the
//     tree.
//
// This makes it a pool: resizing by k layers touches O(2^h) nodes and every
// node that survives keeps its identity and its height.
//
// Complexity:
//
//   - Height, Len: O(1).
//   - AddLayers(k): O(2^(h+k)) factory calls in the worst case.
//   - RemoveLayers(k): O(2^h) copies plus the callback.
//   - Layers, Layer: O(n).
package bintree
