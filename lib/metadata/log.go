// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import "github.com/ChainSafe/storage-gateway/internal/log"

// SetLogLevel sets the level of the package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
