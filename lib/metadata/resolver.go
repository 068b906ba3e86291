// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"context"
	"strings"

	"github.com/ChainSafe/storage-gateway/lib/storage"
)

// DocumentGetter returns the metadata document, see Cache.
type DocumentGetter interface {
	Get(ctx context.Context) (*Document, error)
}

// Resolver finds storage entries from free form module and item names.
type Resolver struct {
	documents DocumentGetter
}

// NewResolver creates a resolver looking up entries in the
// documents returned by the getter given.
func NewResolver(documents DocumentGetter) *Resolver {
	return &Resolver{
		documents: documents,
	}
}

// Resolve lower cases and normalises the module and item names given,
// then looks them up in the metadata document. The boolean returned is
// false if the module or the item does not exist. An error is only
// returned if the metadata document cannot be obtained.
func (r *Resolver) Resolve(ctx context.Context, module, item string) (
	entry storage.Entry, ok bool, err error) {
	document, err := r.documents.Get(ctx)
	if err != nil {
		return entry, false, err
	}

	module = ToCanonical(strings.ToLower(module))
	item = ToCanonical(strings.ToLower(item))
	entry, ok = document.Entry(module, item)
	if !ok {
		logger.Debugf("no storage entry for %s.%s", module, item)
	}
	return entry, ok, nil
}
