// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChainSafe/storage-gateway/lib/common"
	"github.com/ChainSafe/storage-gateway/lib/storage"
	"github.com/stretchr/testify/require"
)

// readMetadataV14 returns the bytes of testdata/metadata_v14.hex, a V14
// metadata declaring the pallets:
//   - System: Number (plain), Account (blake2_128_concat), BlockHash (twox64_concat)
//   - Utility: no storage
//   - Timestamp: Now (plain)
//   - Balances: TotalIssuance (plain)
//   - Staking: ErasStakers (twox64_concat, twox64_concat), Bonded (twox64_concat)
//   - Assets: Approvals (three blake2_128_concat keys)
func readMetadataV14(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "metadata_v14.hex"))
	require.NoError(t, err)

	raw, err := common.HexToBytes(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	return raw
}

func newTestDocument(entries map[string][]storage.Entry) *Document {
	d := &Document{
		version: 14,
		modules: make(map[string]map[string]storage.Entry),
	}
	for module, moduleEntries := range entries {
		for _, entry := range moduleEntries {
			d.add(module, entry)
		}
	}
	return d
}
