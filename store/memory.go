// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package store

// Mem is a map-backed KV for tests and ephemeral hosting contexts.
type Mem struct {
	entries map[string][]byte
}

// NewMem returns an empty in-memory KV.
func NewMem() *Mem {
	return &Mem{entries: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key, or ErrKeyNotFound.
func (m *Mem) Get(key []byte) ([]byte, error) {
	value, ok := m.entries[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	res := make([]byte, len(value))
	copy(res, value)
	return res, nil
}

// Put stores a copy of value under key, overwriting any previous entry.
func (m *Mem) Put(key []byte, value []byte) error {
	res := make([]byte, len(value))
	copy(res, value)
	m.entries[string(key)] = res
	return nil
}
