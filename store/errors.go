// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package store

import "errors"

var (
	// ErrKeyNotFound the requested entry does not exist in the collaborator
	ErrKeyNotFound = errors.New("key not found in store")

	// ErrVersionMismatch the snapshot was written by an incompatible library version
	ErrVersionMismatch = errors.New("incompatible snapshot version")
)
