// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package zkmerkle provides an append-only Merkle accumulator whose inclusion
// proofs are laid out exactly as the companion verification circuit consumes
// them.
//
// The accumulator folds its leaves pairwise with an externally supplied
// two-to-one hash (in practice MiMC over the BN254 scalar field, shared with
// the circuit) and promotes an unpaired trailing node to the next level
// unchanged. A proof carries one sibling per level that actually contributed
// a hash, so its depth can be smaller than the tree depth; the circuit
// replays the same fold bit for bit.
//
//   - package merkle holds the tree, the folding and the proof generator
//   - package store persists a tree through a key-value collaborator
//   - package circuit is the in-circuit verifier gadget
package zkmerkle

import (
	"github.com/blang/semver/v4"
)

// Version of the zkmerkle library. The storage codec embeds it in persisted
// trees and refuses to load snapshots written by a different major version.
var Version = semver.MustParse("0.2.1")
