// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"github.com/ChainSafe/storage-gateway/lib/common"
)

const (
	aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	alicePublic  = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

	// twox128("Timestamp") ‖ twox128("Now")
	timestampNowKey = "0xf0c365c3cf59d671eb72da0e7a4113c49f1f0515f462cdcf84e0f1d6045dfcbb"
	// twox128("System") ‖ twox128("Account") ‖ blake2_128_concat(alice)
	aliceAccountKey = "0x26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9" +
		"de1e86a9a8c739864cf3cc5ec2bea59f" +
		"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	// twox128("Staking") ‖ twox128("Bonded") ‖ twox64_concat("bob")
	bondedBobKey = "0x5f3e4907f716ac89b6347d15ececedca3ed14b45ed20d054f05e37e2542cfe70" +
		"3bd0ba423b8a8792626f62"
	// twox128("Staking") ‖ twox128("ErasStakers") ‖ twox64_concat(era 1) ‖
	// twox64_concat(32 bytes of 0x01)
	erasStakersKey = "0x5f3e4907f716ac89b6347d15ececedca8bde0a0ea8864605e3b68ed9cb2da01b" +
		"5153cb1f00942ff401000000" +
		"0d052d00259f2a8f0101010101010101010101010101010101010101010101010101010101010101"
)

func mustHex(s string) []byte {
	return common.MustHexToBytes(s)
}
