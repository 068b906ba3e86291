// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"testing"

	"github.com/ChainSafe/storage-gateway/lib/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode(t *testing.T) {
	t.Parallel()

	raw := readMetadataV14(t)

	document, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, uint8(14), document.Version())
	assert.Equal(t, 8, document.Len())

	expectedEntries := map[string][]storage.Entry{
		"System": {
			storage.NewPlain("System", "Number"),
			storage.NewMap("System", "Account", storage.Blake2_128Concat),
			storage.NewMap("System", "BlockHash", storage.Twox64Concat),
		},
		"Timestamp": {storage.NewPlain("Timestamp", "Now")},
		"Balances":  {storage.NewPlain("Balances", "TotalIssuance")},
		"Staking": {
			storage.NewDoubleMap("Staking", "ErasStakers", storage.Twox64Concat, storage.Twox64Concat),
			storage.NewMap("Staking", "Bonded", storage.Twox64Concat),
		},
		"Assets": {{
			Module: "Assets",
			Name:   "Approvals",
			Kind:   storage.NMap,
			Hashers: []storage.Hasher{storage.Blake2_128Concat,
				storage.Blake2_128Concat, storage.Blake2_128Concat},
		}},
	}

	for module, entries := range expectedEntries {
		for _, expected := range entries {
			entry, ok := document.Entry(module, expected.Name)
			require.True(t, ok, "%s.%s not found", module, expected.Name)
			assert.Equal(t, expected, entry)
		}
	}

	_, ok := document.Entry("Utility", "Anything")
	assert.False(t, ok)
}

func Test_Decode_errors(t *testing.T) {
	t.Parallel()

	valid := readMetadataV14(t)

	badMagic := append([]byte{}, valid...)
	badMagic[0] = 'x'

	badVersion := append([]byte{}, valid...)
	badVersion[4] = 200

	testCases := map[string]struct {
		raw []byte
	}{
		"nil":         {},
		"too short":   {raw: []byte{0x12, 0x34}},
		"bad magic":   {raw: badMagic},
		"bad version": {raw: badVersion},
		"truncated":   {raw: valid[:len(valid)/2]},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			document, err := Decode(testCase.raw)

			assert.ErrorIs(t, err, ErrDecode)
			assert.Nil(t, document)
		})
	}
}
