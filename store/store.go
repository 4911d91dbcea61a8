// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package store persists a merkle.Tree through a key-value collaborator.
//
// A tree is stored as three independent entries (leaf sequence, depth, root),
// copied verbatim from the tree's cached state. The codec performs no
// recomputation in either direction: Load trusts the persisted depth and root
// to be consistent with the leaves, and the collaborator provides whatever
// atomicity the hosting context arranges across the three entries.
package store

import (
	"fmt"
	"hash"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/zkmerkle"
	"github.com/consensys/zkmerkle/logger"
	"github.com/consensys/zkmerkle/merkle"
)

// KV is the read/write contract the codec needs from the persistence
// collaborator. Get returns ErrKeyNotFound (possibly wrapped) for a missing
// key.
type KV interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
}

var (
	keyLeaves = []byte("zkmerkle:leaves")
	keyDepth  = []byte("zkmerkle:depth")
	keyRoot   = []byte("zkmerkle:root")
)

// leavesRecord is the CBOR envelope of the leaf sequence entry. It carries
// the library version that wrote it; Load rejects records written by a
// different major version.
type leavesRecord struct {
	Version string
	Leaves  []merkle.Node
}

// Save writes the tree's (leaves, depth, root) triple to kv as three entries.
// The cached fields are copied verbatim; nothing is recomputed.
func Save(kv KV, t *merkle.Tree) error {
	leaves, depth, root := t.ToStorage()

	blob, err := cbor.Marshal(leavesRecord{Version: zkmerkle.Version.String(), Leaves: leaves})
	if err != nil {
		return fmt.Errorf("encode leaves: %w", err)
	}
	if err := kv.Put(keyLeaves, blob); err != nil {
		return fmt.Errorf("store leaves: %w", err)
	}

	blob, err = cbor.Marshal(depth)
	if err != nil {
		return fmt.Errorf("encode depth: %w", err)
	}
	if err := kv.Put(keyDepth, blob); err != nil {
		return fmt.Errorf("store depth: %w", err)
	}

	blob, err = cbor.Marshal(root)
	if err != nil {
		return fmt.Errorf("encode root: %w", err)
	}
	if err := kv.Put(keyRoot, blob); err != nil {
		return fmt.Errorf("store root: %w", err)
	}

	log := logger.Logger()
	log.Debug().Uint64("nbLeaves", uint64(len(leaves))).Uint64("depth", depth).Msg("saved merkle tree")
	return nil
}

// Load reads the three entries written by Save and reconstructs a tree bound
// to h. The persisted depth and root are trusted as-is; consistency with the
// leaves is a precondition on whoever wrote the entries, not something Load
// checks. See merkle.FromStorage.
func Load(kv KV, h hash.Hash) (*merkle.Tree, error) {
	blob, err := kv.Get(keyLeaves)
	if err != nil {
		return nil, fmt.Errorf("load leaves: %w", err)
	}
	var rec leavesRecord
	if err := cbor.Unmarshal(blob, &rec); err != nil {
		return nil, fmt.Errorf("decode leaves: %w", err)
	}
	if err := checkVersion(rec.Version); err != nil {
		return nil, err
	}

	blob, err = kv.Get(keyDepth)
	if err != nil {
		return nil, fmt.Errorf("load depth: %w", err)
	}
	var depth uint64
	if err := cbor.Unmarshal(blob, &depth); err != nil {
		return nil, fmt.Errorf("decode depth: %w", err)
	}

	blob, err = kv.Get(keyRoot)
	if err != nil {
		return nil, fmt.Errorf("load root: %w", err)
	}
	var root merkle.Node
	if err := cbor.Unmarshal(blob, &root); err != nil {
		return nil, fmt.Errorf("decode root: %w", err)
	}

	log := logger.Logger()
	log.Debug().Uint64("nbLeaves", uint64(len(rec.Leaves))).Uint64("depth", depth).Msg("loaded merkle tree")
	return merkle.FromStorage(h, rec.Leaves, depth, root), nil
}

// checkVersion rejects snapshots written by a different major version of the
// library.
func checkVersion(v string) error {
	recorded, err := semver.Parse(v)
	if err != nil {
		return fmt.Errorf("invalid recorded version %q: %w", v, err)
	}
	if recorded.Major != zkmerkle.Version.Major {
		return fmt.Errorf("%w: snapshot version %s, library version %s", ErrVersionMismatch, recorded, zkmerkle.Version)
	}
	return nil
}
