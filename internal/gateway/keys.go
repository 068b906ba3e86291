// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/storage-gateway/lib/common"
	"github.com/ChainSafe/storage-gateway/lib/crypto"
)

// parseKey decodes a sub-key query parameter. A 0x prefixed value is
// decoded as hex, a valid SS58 address gives its public key and any
// other value is used as its UTF-8 bytes. An empty value gives nil.
func parseKey(s string) (key []byte, err error) {
	switch {
	case s == "":
		return nil, nil
	case strings.HasPrefix(s, "0x"):
		key, err = common.HexToBytes(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadKey, s, err)
		}
		return key, nil
	}

	publicKey, _, err := crypto.PublicAddressToByteArray(s)
	if err == nil {
		return publicKey, nil
	}
	return []byte(s), nil
}
