// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/storage-gateway/lib/common"
	"github.com/btcsuite/btcutil/base58"
)

// PublicKeyLength is the length of an account public key carried by an SS58 address.
const PublicKeyLength = 32

// SubstrateNetwork is the generic substrate SS58 network prefix.
const SubstrateNetwork uint16 = 42

const checksumLength = 2

var ss58Prefix = []byte("SS58PRE")

var (
	// ErrAddressLength is returned for addresses or public keys of the wrong size.
	ErrAddressLength = errors.New("invalid ss58 address length")
	// ErrAddressPrefix is returned for reserved network prefix bytes, 128 and above.
	ErrAddressPrefix = errors.New("invalid ss58 network prefix")
	// ErrAddressChecksum is returned when the address checksum does not match its payload.
	ErrAddressChecksum = errors.New("ss58 address checksum mismatch")
)

// PublicKeyToAddress returns an ss58 address for the given public key
// and network prefix.
func PublicKeyToAddress(pub []byte, network uint16) (string, error) {
	if len(pub) != PublicKeyLength {
		return "", fmt.Errorf("%w: public key has %d bytes", ErrAddressLength, len(pub))
	}

	enc := append(encodeNetwork(network), pub...)
	checksum, err := addressChecksum(enc)
	if err != nil {
		return "", err
	}

	return base58.Encode(append(enc, checksum...)), nil
}

// PublicAddressToByteArray decodes an ss58 address and returns the
// public key it carries, together with its network prefix.
func PublicAddressToByteArray(address string) (pub []byte, network uint16, err error) {
	decoded := base58.Decode(address)
	if len(decoded) == 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrAddressLength, address)
	}

	var prefixLength int
	switch {
	case decoded[0] < 64:
		prefixLength = 1
		network = uint16(decoded[0])
	case decoded[0] < 128:
		if len(decoded) < 2 {
			return nil, 0, fmt.Errorf("%w: %q", ErrAddressLength, address)
		}
		prefixLength = 2
		// two byte prefix as laid out by the ss58 registry
		lower := (decoded[0] << 2) | (decoded[1] >> 6)
		upper := decoded[1] & 0x3f
		network = uint16(lower&0xff) | uint16(upper)<<8
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrAddressPrefix, decoded[0])
	}

	if len(decoded) != prefixLength+PublicKeyLength+checksumLength {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrAddressLength, len(decoded))
	}

	body := decoded[:prefixLength+PublicKeyLength]
	checksum, err := addressChecksum(body)
	if err != nil {
		return nil, 0, err
	}

	if !bytes.Equal(checksum, decoded[prefixLength+PublicKeyLength:]) {
		return nil, 0, fmt.Errorf("%w: %q", ErrAddressChecksum, address)
	}

	pub = make([]byte, PublicKeyLength)
	copy(pub, body[prefixLength:])
	return pub, network, nil
}

func encodeNetwork(network uint16) []byte {
	if network < 64 {
		return []byte{byte(network)}
	}

	first := byte((network&0xfc)>>2) | 0x40
	second := byte(network>>8) | byte(network&0x03)<<6
	return []byte{first, second}
}

func addressChecksum(body []byte) ([]byte, error) {
	h, err := common.Blake2b512(common.Concat(ss58Prefix, body))
	if err != nil {
		return nil, err
	}
	return h[:checksumLength], nil
}
