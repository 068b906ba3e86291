// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"strings"

	"github.com/ChainSafe/storage-gateway/lib/common"
	"github.com/btcsuite/btcutil/base58"
)

const (
	mediaTypeText   = "text/plain"
	mediaTypeBinary = "application/octet-stream"
	mediaTypeBase58 = "application/x-base58"
)

// format is a representation of the raw bytes answered.
type format uint8

const (
	formatBinary format = iota
	formatHex
	formatBase58
)

func (f format) contentType() string {
	switch f {
	case formatHex:
		return mediaTypeText + "; charset=utf-8"
	case formatBase58:
		return mediaTypeBase58
	default:
		return mediaTypeBinary
	}
}

func (f format) encode(value []byte) []byte {
	switch f {
	case formatHex:
		return []byte(common.BytesToHex(value))
	case formatBase58:
		return []byte(base58.Encode(value))
	default:
		return value
	}
}

// negotiate picks the first representation accepted by the Accept
// header given, in header order. Quality values are only used to
// exclude media ranges with q=0. An empty header accepts the binary
// representation.
func negotiate(accept string) (f format, ok bool) {
	if strings.TrimSpace(accept) == "" {
		return formatBinary, true
	}

	for _, mediaRange := range strings.Split(accept, ",") {
		fields := strings.Split(mediaRange, ";")
		mediaType := strings.ToLower(strings.TrimSpace(fields[0]))
		if excluded(fields[1:]) {
			continue
		}

		switch mediaType {
		case mediaTypeBinary, "application/*", "*/*":
			return formatBinary, true
		case mediaTypeText, "text/*":
			return formatHex, true
		case mediaTypeBase58:
			return formatBase58, true
		}
	}

	return 0, false
}

func excluded(parameters []string) bool {
	for _, parameter := range parameters {
		parameter = strings.ReplaceAll(parameter, " ", "")
		switch parameter {
		case "q=0", "q=0.0", "q=0.00", "q=0.000":
			return true
		}
	}
	return false
}
