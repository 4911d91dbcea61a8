// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package merkle implements an append-only Merkle accumulator with the exact
// folding and proof layout expected by the companion verification circuit.
//
// The tree is a pure value design: an ordered leaf slice plus a cached depth
// and root, no node graph. Every level is derived from the one below by
// combining pairs with the injected hash primitive; an unpaired trailing node
// is carried to the next level unchanged. A carried node contributes no
// sibling to an inclusion proof, so a proof's depth can be smaller than the
// tree's depth.
package merkle

import (
	"hash"
)

// Tree is an append-only Merkle accumulator. Leaves are never mutated or
// removed; each insertion refolds the tree and refreshes the cached depth
// and root. Tree is not safe for concurrent use; the hosting context is
// expected to serialize calls.
type Tree struct {
	h      hash.Hash
	leaves []Node
	depth  uint64
	root   Node
}

// NewTree returns an empty tree (depth 0, EmptyRoot) bound to the given
// two-to-one hash primitive.
func NewTree(h hash.Hash) *Tree {
	return &Tree{h: h, root: EmptyRoot}
}

// Insert appends leaf at index LeafCount() and recomputes the cached depth
// and root.
func (t *Tree) Insert(leaf Node) {
	t.leaves = append(t.leaves, leaf)
	t.rebuild()
}

// LeafCount returns the number of leaves inserted so far.
func (t *Tree) LeafCount() uint64 {
	return uint64(len(t.leaves))
}

// IsEmpty reports whether the tree holds no leaves.
func (t *Tree) IsEmpty() bool {
	return len(t.leaves) == 0
}

// Depth returns the number of fold levels between the leaves and the root:
// 0 for n <= 1 leaves, ceil(log2(n)) otherwise.
func (t *Tree) Depth() uint64 {
	return t.depth
}

// Root returns the cached root, EmptyRoot for an empty tree.
func (t *Tree) Root() Node {
	return t.root
}

// Leaf returns the leaf at the given insertion index.
func (t *Tree) Leaf(index uint64) (Node, error) {
	if index >= uint64(len(t.leaves)) {
		return Node{}, ErrIndexOutOfRange
	}
	return t.leaves[index], nil
}

// ToStorage returns the persisted triple (leaves, depth, root) verbatim from
// the cached state, without recomputation. The leaf slice is a copy.
func (t *Tree) ToStorage() (leaves []Node, depth uint64, root Node) {
	leaves = make([]Node, len(t.leaves))
	copy(leaves, t.leaves)
	return leaves, t.depth, t.root
}

// FromStorage reconstructs a tree from a persisted triple. The supplied depth
// and root are trusted as already consistent with the leaves; nothing is
// verified or recomputed at load time. A caller that supplies an inconsistent
// triple obtains a tree whose queries return the stale values until the next
// Insert refolds it.
func FromStorage(h hash.Hash, leaves []Node, depth uint64, root Node) *Tree {
	t := &Tree{h: h, leaves: make([]Node, len(leaves)), depth: depth, root: root}
	copy(t.leaves, leaves)
	return t
}

// rebuild refolds the whole leaf sequence and refreshes the cached depth and
// root. A full refold is O(n) per insertion; depth and root are pure
// functions of the leaf sequence, so an incremental path update would give
// identical results.
func (t *Tree) rebuild() {
	if len(t.leaves) == 0 {
		t.depth = 0
		t.root = EmptyRoot
		return
	}

	level := make([]Node, len(t.leaves))
	copy(level, t.leaves)

	var depth uint64
	for len(level) > 1 {
		level = foldLevel(t.h, level)
		depth++
	}

	t.depth = depth
	t.root = level[0]
}

// foldLevel derives the next level: pairs are combined, an unpaired trailing
// node is carried unchanged.
func foldLevel(h hash.Hash, level []Node) []Node {
	next := make([]Node, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 < len(level) {
			next = append(next, Combine(h, level[i], level[i+1]))
		} else {
			next = append(next, level[i])
		}
	}
	return next
}
