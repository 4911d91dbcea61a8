// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkle

import (
	"hash"

	"github.com/bits-and-blooms/bitset"
)

// Proof is an inclusion proof for one leaf, in the layout the verification
// circuit consumes: the sibling sequence from the leaf level upward and, for
// each sibling, the side it sits on. Levels where the proven node was carried
// (unpaired trailing node) record no sibling, so Depth can be strictly
// smaller than the tree's depth. Depth always equals len(Siblings); it is
// never padded or truncated.
type Proof struct {
	// Siblings, ordered from the leaf level to the level below the root.
	Siblings []Node

	// IsRight bit i is set when Siblings[i] sits to the right of the running
	// hash, i.e. the proven node was the left child at that recorded level.
	IsRight *bitset.BitSet

	// Depth is the number of siblings recorded.
	Depth uint64
}

// Prove generates the inclusion proof for the leaf at leafIndex. It replays
// the fold without mutating the tree. Returns ErrEmptyTree on a tree with
// zero leaves and ErrIndexOutOfRange when leafIndex >= LeafCount().
func (t *Tree) Prove(leafIndex uint64) (Proof, error) {
	if t.IsEmpty() {
		return Proof{}, ErrEmptyTree
	}
	if leafIndex >= uint64(len(t.leaves)) {
		return Proof{}, ErrIndexOutOfRange
	}

	level := make([]Node, len(t.leaves))
	copy(level, t.leaves)

	proof := Proof{IsRight: bitset.New(uint(t.depth))}
	idx := leafIndex

	for len(level) > 1 {
		if idx%2 == 0 {
			if idx+1 < uint64(len(level)) {
				proof.IsRight.Set(uint(len(proof.Siblings)))
				proof.Siblings = append(proof.Siblings, level[idx+1])
			}
			// no sibling: idx is the carried trailing node of an odd-length
			// level, which contributes nothing to the proof
		} else {
			proof.Siblings = append(proof.Siblings, level[idx-1])
		}
		level = foldLevel(t.h, level)
		idx /= 2
	}

	proof.Depth = uint64(len(proof.Siblings))
	return proof, nil
}

// VerifyProof replays the combine/carry fold over the proof's siblings,
// starting from leaf, and reports whether it reconstructs root. This is the
// plain-Go twin of the circuit's verification; use it to check witnesses
// before proving.
func VerifyProof(h hash.Hash, root Node, leaf Node, proof Proof) bool {
	if proof.Depth != uint64(len(proof.Siblings)) {
		return false
	}

	sum := leaf
	for i, sibling := range proof.Siblings {
		if proof.IsRight != nil && proof.IsRight.Test(uint(i)) {
			sum = Combine(h, sum, sibling)
		} else {
			sum = Combine(h, sibling, sum)
		}
	}
	return sum == root
}
