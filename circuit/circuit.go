// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package circuit provides the in-circuit verifier for zkmerkle inclusion
// proofs.
//
// The gadget replays the accumulator's combine/carry fold over the proof's
// siblings. Because a carried node records no sibling, the number of fold
// steps is the proof's depth, not the tree's, and the side of each sibling
// cannot be derived from the leaf index alone: the direction bits travel
// with the proof as boolean witnesses.
//
// The leaf enters the fold unhashed; leaves are already elements of the
// scalar field, committed by the caller.
package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash"

	"github.com/consensys/zkmerkle/merkle"
)

// Proof verifies a zkmerkle inclusion proof in-circuit. Path holds the
// sibling values from the leaf level upward; IsRight[i] is 1 when Path[i]
// sits to the right of the running hash. len(Path) fixes the proof depth at
// compile time and must equal the depth of the proofs being verified.
type Proof struct {
	// RootHash is the accumulator root the fold must reconstruct.
	RootHash frontend.Variable `gnark:",public"`

	Path    []frontend.Variable
	IsRight []frontend.Variable
}

// VerifyProof folds leaf with the proof's siblings and constrains the result
// to equal RootHash. h must be the same primitive the accumulator combines
// with (MiMC in practice).
func (mp *Proof) VerifyProof(api frontend.API, h hash.FieldHasher, leaf frontend.Variable) {
	sum := leaf

	for i := range mp.Path {
		api.AssertIsBoolean(mp.IsRight[i])

		left := api.Select(mp.IsRight[i], sum, mp.Path[i])
		right := api.Select(mp.IsRight[i], mp.Path[i], sum)

		h.Reset()
		h.Write(left, right)
		sum = h.Sum()
	}

	api.AssertIsEqual(sum, mp.RootHash)
}

// Assign builds the witness assignment for a proof generated off-circuit.
// The returned Proof has the same shape as the compiled gadget as long as the
// gadget was allocated with len(Path) == p.Depth.
func Assign(p merkle.Proof, root merkle.Node) Proof {
	mp := Proof{
		RootHash: root[:],
		Path:     make([]frontend.Variable, len(p.Siblings)),
		IsRight:  make([]frontend.Variable, len(p.Siblings)),
	}
	for i := range p.Siblings {
		mp.Path[i] = p.Siblings[i][:]
		mp.IsRight[i] = 0
		if p.IsRight != nil && p.IsRight.Test(uint(i)) {
			mp.IsRight[i] = 1
		}
	}
	return mp
}
