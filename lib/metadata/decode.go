// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// magicNumber is "meta" read as a little endian uint32.
const magicNumber uint32 = 0x6174656d

var (
	// ErrDecode is wrapped by every metadata decoding failure.
	ErrDecode = errors.New("cannot decode metadata")
	// ErrMagicNumber is returned when the metadata does not start
	// with the "meta" magic number.
	ErrMagicNumber = errors.New("metadata magic number mismatch")
)

// Decode decodes SCALE encoded runtime metadata as returned by
// state_getMetadata and builds its storage Document.
func Decode(raw []byte) (*Document, error) {
	if len(raw) < 5 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrDecode, len(raw))
	}

	meta := new(types.Metadata)
	decoder := scale.NewDecoder(bytes.NewReader(raw))
	err := decoder.Decode(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if meta.MagicNumber != magicNumber {
		return nil, fmt.Errorf("%w: %w: %#x", ErrDecode, ErrMagicNumber, meta.MagicNumber)
	}

	document, err := NewDocument(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return document, nil
}
