// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkle

import "errors"

var (
	// ErrIndexOutOfRange the requested leaf index is >= the leaf count
	ErrIndexOutOfRange = errors.New("leaf index is out of range")

	// ErrEmptyTree a proof was requested on a tree with zero leaves
	ErrEmptyTree = errors.New("cannot prove membership in an empty tree")
)
