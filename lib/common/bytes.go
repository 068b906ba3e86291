// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrNoPrefix is returned when trying to convert a hex-encoded string with no 0x prefix
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if len(in) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	if strings.Compare(in[:2], "0x") != 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	// Ensure we have an even length
	if len(in)%2 != 0 {
		in = in[:2] + "0" + in[2:]
	}

	out, err := hex.DecodeString(in[2:])
	return out, err
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panic if it cannot decode the string
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}

	return out
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	s := hex.EncodeToString(in)
	return "0x" + s
}

// Concat concatenates byte slices into a newly allocated slice
// so none of the inputs is modified.
func Concat(parts ...[]byte) []byte {
	size := 0
	for _, part := range parts {
		size += len(part)
	}

	r := make([]byte, 0, size)
	for _, part := range parts {
		r = append(r, part...)
	}
	return r
}
