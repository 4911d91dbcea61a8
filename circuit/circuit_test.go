// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	gchash "github.com/consensys/gnark-crypto/hash"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/consensys/zkmerkle/merkle"
)

type proofCircuit struct {
	Proof Proof
	Leaf  frontend.Variable
}

func (c *proofCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	c.Proof.VerifyProof(api, &h, c.Leaf)
	return nil
}

func leafOf(i uint64) merkle.Node {
	var e fr.Element
	e.SetUint64(i + 1)
	return merkle.Node(e.Bytes())
}

func buildTree(n uint64) *merkle.Tree {
	tree := merkle.NewTree(gchash.MIMC_BN254.New())
	for i := uint64(0); i < n; i++ {
		tree.Insert(leafOf(i))
	}
	return tree
}

// hollow allocates a circuit with the same proof shape as the assignment but
// no values.
func hollow(depth int) *proofCircuit {
	return &proofCircuit{
		Proof: Proof{
			Path:    make([]frontend.Variable, depth),
			IsRight: make([]frontend.Variable, depth),
		},
	}
}

func TestVerifyInCircuit(t *testing.T) {
	assert := test.NewAssert(t)

	tree := buildTree(8)
	for _, index := range []uint64{0, 3, 5, 7} {
		proof, err := tree.Prove(index)
		require.NoError(t, err)

		// the plain-Go replay must agree before we burn time proving
		leaf := leafOf(index)
		require.True(t, merkle.VerifyProof(gchash.MIMC_BN254.New(), tree.Root(), leaf, proof))

		witness := &proofCircuit{
			Proof: Assign(proof, tree.Root()),
			Leaf:  leaf[:],
		}
		assert.ProverSucceeded(hollow(int(proof.Depth)), witness, test.WithCurves(ecc.BN254))
	}
}

// TestVerifyCarriedLeaf covers the fold-compatibility case the gadget exists
// for: a proof whose depth is shorter than the tree depth because the leaf
// was carried. Three leaves, proving the third: one sibling, tree depth 2.
func TestVerifyCarriedLeaf(t *testing.T) {
	assert := test.NewAssert(t)

	tree := buildTree(3)
	proof, err := tree.Prove(2)
	require.NoError(t, err)
	require.Equal(t, uint64(1), proof.Depth)

	leaf := leafOf(2)
	witness := &proofCircuit{
		Proof: Assign(proof, tree.Root()),
		Leaf:  leaf[:],
	}
	assert.ProverSucceeded(hollow(1), witness, test.WithCurves(ecc.BN254))
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	assert := test.NewAssert(t)

	tree := buildTree(4)
	proof, err := tree.Prove(1)
	require.NoError(t, err)

	leaf := leafOf(1)
	bogus := leafOf(42)
	witness := &proofCircuit{
		Proof: Assign(proof, bogus),
		Leaf:  leaf[:],
	}
	assert.ProverFailed(hollow(int(proof.Depth)), witness, test.WithCurves(ecc.BN254))
}

func TestVerifyRejectsWrongLeaf(t *testing.T) {
	assert := test.NewAssert(t)

	tree := buildTree(4)
	proof, err := tree.Prove(1)
	require.NoError(t, err)

	wrong := leafOf(2)
	witness := &proofCircuit{
		Proof: Assign(proof, tree.Root()),
		Leaf:  wrong[:],
	}
	assert.ProverFailed(hollow(int(proof.Depth)), witness, test.WithCurves(ecc.BN254))
}
