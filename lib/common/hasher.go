// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data
func Blake2b128(in []byte) ([]byte, error) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Blake2b256 returns the 256-bit blake2b hash of the input data
func Blake2b256(in []byte) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Blake2b512 returns the 512-bit blake2b hash of the input data
func Blake2b512(in []byte) ([]byte, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) ([]byte, error) {
	return twox(in, 1)
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) ([]byte, error) {
	return twox(msg, 2)
}

// MustTwox128Hash is Twox128Hash but panics on error.
func MustTwox128Hash(msg []byte) []byte {
	h, err := Twox128Hash(msg)
	if err != nil {
		panic(err)
	}
	return h
}

// Twox256 returns the twox256 hash of the input data
func Twox256(in []byte) ([]byte, error) {
	return twox(in, 4)
}

// twox runs one seeded xxHash64 round per seed, starting at seed 0,
// and concatenates the little endian digests.
func twox(in []byte, rounds uint64) ([]byte, error) {
	out := make([]byte, 0, 8*rounds)
	for seed := uint64(0); seed < rounds; seed++ {
		h := xxhash.NewS64(seed)
		_, err := h.Write(in)
		if err != nil {
			return nil, err
		}

		digest := make([]byte, 8)
		binary.LittleEndian.PutUint64(digest, h.Sum64())
		out = append(out, digest...)
	}
	return out, nil
}
