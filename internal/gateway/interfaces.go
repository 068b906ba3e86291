// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"context"

	"github.com/ChainSafe/storage-gateway/lib/storage"
)

// Node is the remote node queried by the gateway.
type Node interface {
	Metadata(ctx context.Context) ([]byte, error)
	Storage(ctx context.Context, key []byte) (value []byte, ok bool, err error)
}

// Resolver resolves free form module and item names to storage entries.
type Resolver interface {
	Resolve(ctx context.Context, module, item string) (entry storage.Entry, ok bool, err error)
}
