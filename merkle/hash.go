// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkle

import (
	"hash"
)

// NodeSize is the byte size of every node in the tree. It matches the output
// size of the bound hash primitive (one BN254 scalar field element for MiMC).
const NodeSize = 32

// Node is a fixed-size hash value appearing at any level of the tree, leaves
// and root included. Leaves are opaque to the tree; callers supply them
// already hashed into the scalar field of the verifying circuit.
type Node [NodeSize]byte

// EmptyRoot is the root of a tree with zero leaves.
var EmptyRoot Node

// Combine compresses two nodes into their parent using the supplied
// primitive: h(left ∥ right). It is the single place where the tree touches
// the hash; the primitive must be the one the verifying circuit uses
// (hash.MIMC_BN254 in practice) or proofs will not verify in-circuit.
func Combine(h hash.Hash, left, right Node) Node {
	h.Reset()
	_, _ = h.Write(left[:])
	_, _ = h.Write(right[:])

	var res Node
	copy(res[:], h.Sum(nil))
	return res
}
