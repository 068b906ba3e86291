// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/storage-gateway/lib/common"
)

// Hasher is the hashing scheme a storage entry declares for one of its keys.
type Hasher uint8

const (
	// Twox128 is two xxHash64 rounds seeded with 0 and 1.
	Twox128 Hasher = iota
	// Blake2_128 is the 128 bits blake2b digest.
	Blake2_128
	// Blake2_256 is the 256 bits blake2b digest.
	Blake2_256
	// Twox256 is four xxHash64 rounds seeded with 0 to 3.
	Twox256
	// Twox64Concat is one xxHash64 round followed by the input.
	Twox64Concat
	// Blake2_128Concat is the 128 bits blake2b digest followed by the input.
	Blake2_128Concat
	// Identity leaves the input untouched.
	Identity
)

// ErrUnknownHasher is returned when hashing with a value outside of the Hasher enum.
var ErrUnknownHasher = errors.New("unknown storage hasher")

func (h Hasher) String() string {
	switch h {
	case Twox128:
		return "Twox128"
	case Blake2_128:
		return "Blake2_128"
	case Blake2_256:
		return "Blake2_256"
	case Twox256:
		return "Twox256"
	case Twox64Concat:
		return "Twox64Concat"
	case Blake2_128Concat:
		return "Blake2_128Concat"
	case Identity:
		return "Identity"
	default:
		return fmt.Sprintf("Hasher(%d)", uint8(h))
	}
}

// Concat returns true if the hasher appends the original input
// after its digest.
func (h Hasher) Concat() bool {
	return h == Twox64Concat || h == Blake2_128Concat
}

// Hash applies the hasher to the input. Concat hashers return the digest
// followed by the raw input bytes.
func (h Hasher) Hash(in []byte) (out []byte, err error) {
	var digest []byte
	switch h {
	case Twox128:
		digest, err = common.Twox128Hash(in)
	case Blake2_128, Blake2_128Concat:
		digest, err = common.Blake2b128(in)
	case Blake2_256:
		digest, err = common.Blake2b256(in)
	case Twox256:
		digest, err = common.Twox256(in)
	case Twox64Concat:
		digest, err = common.Twox64(in)
	case Identity:
		return common.Concat(in), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownHasher, uint8(h))
	}
	if err != nil {
		return nil, fmt.Errorf("hashing with %s: %w", h, err)
	}

	if h.Concat() {
		return common.Concat(digest, in), nil
	}
	return digest, nil
}
