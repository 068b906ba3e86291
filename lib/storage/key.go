// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/storage-gateway/lib/common"
)

var (
	// ErrMissingKey is returned when a map entry is queried without
	// one of the keys it requires.
	ErrMissingKey = errors.New("missing storage key")
	// ErrUnsupportedKind is returned for entries with a kind or a number
	// of hashers the key builder cannot handle.
	ErrUnsupportedKind = errors.New("unsupported storage entry kind")
)

// Prefix returns the twox128(module) ‖ twox128(name) storage prefix,
// whatever hashers the entry declares for its keys.
func Prefix(module, name string) ([]byte, error) {
	moduleHash, err := common.Twox128Hash([]byte(module))
	if err != nil {
		return nil, fmt.Errorf("hashing module name: %w", err)
	}

	nameHash, err := common.Twox128Hash([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("hashing storage name: %w", err)
	}

	return common.Concat(moduleHash, nameHash), nil
}

// Key derives the node storage key of the entry for the keys given.
// Keys are ignored for plain entries.
func Key(entry Entry, key1, key2 []byte) (key []byte, err error) {
	var keys [][]byte
	switch entry.Kind {
	case Plain:
	case Map:
		if len(key1) == 0 {
			return nil, fmt.Errorf("%w: %s requires k", ErrMissingKey, entry.Name)
		}
		keys = [][]byte{key1}
	case DoubleMap:
		if len(key1) == 0 {
			return nil, fmt.Errorf("%w: %s requires k", ErrMissingKey, entry.Name)
		}
		if len(key2) == 0 {
			return nil, fmt.Errorf("%w: %s requires k2", ErrMissingKey, entry.Name)
		}
		keys = [][]byte{key1, key2}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, entry.Kind)
	}

	if len(entry.Hashers) != len(keys) {
		return nil, fmt.Errorf("%w: %s has %d hashers for %d keys",
			ErrUnsupportedKind, entry.Kind, len(entry.Hashers), len(keys))
	}

	key, err = Prefix(entry.Module, entry.Name)
	if err != nil {
		return nil, err
	}

	for i, k := range keys {
		hashed, err := entry.Hashers[i].Hash(k)
		if err != nil {
			return nil, err
		}
		key = append(key, hashed...)
	}

	return key, nil
}
