// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/storage-gateway/lib/storage"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var (
	// ErrUnsupportedVersion is returned for metadata versions
	// no storage index can be built from.
	ErrUnsupportedVersion = errors.New("unsupported metadata version")
	// ErrUnknownHasher is returned when a storage entry declares
	// a hasher with no known variant set.
	ErrUnknownHasher = errors.New("unknown storage hasher")
)

// Document is the storage index of a decoded metadata blob.
// It maps canonical module names to their storage entries by item name.
// It is immutable once built.
type Document struct {
	version uint8
	modules map[string]map[string]storage.Entry
}

// NewDocument builds the storage index of the metadata given.
// Only metadata versions 13 and 14 are supported.
func NewDocument(meta *types.Metadata) (*Document, error) {
	d := &Document{
		version: meta.Version,
		modules: make(map[string]map[string]storage.Entry),
	}

	var err error
	switch meta.Version {
	case 14:
		err = d.indexV14(meta.AsMetadataV14)
	case 13:
		err = d.indexV13(meta.AsMetadataV13)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, meta.Version)
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Version returns the metadata version the document was built from.
func (d *Document) Version() uint8 { return d.version }

// Len returns the number of storage entries in the document.
func (d *Document) Len() (n int) {
	for _, items := range d.modules {
		n += len(items)
	}
	return n
}

// Entry returns the storage entry for the exact canonical module
// and item names given.
func (d *Document) Entry(module, item string) (entry storage.Entry, ok bool) {
	items, ok := d.modules[module]
	if !ok {
		return entry, false
	}
	entry, ok = items[item]
	return entry, ok
}

func (d *Document) add(module string, entry storage.Entry) {
	items, ok := d.modules[module]
	if !ok {
		items = make(map[string]storage.Entry)
		d.modules[module] = items
	}
	items[entry.Name] = entry
}

func (d *Document) indexV14(meta types.MetadataV14) error {
	for _, pallet := range meta.Pallets {
		if !pallet.HasStorage {
			continue
		}

		prefix := string(pallet.Storage.Prefix)
		for _, item := range pallet.Storage.Items {
			entry := storage.Entry{
				Module: prefix,
				Name:   string(item.Name),
				Kind:   storage.Plain,
			}

			if item.Type.IsMap {
				hashers, err := toHashers(item.Type.AsMap.Hashers)
				if err != nil {
					return fmt.Errorf("%s.%s: %w", pallet.Name, item.Name, err)
				}
				entry.Hashers = hashers
				entry.Kind = kindOf(hashers)
			}

			d.add(string(pallet.Name), entry)
		}
	}
	return nil
}

func (d *Document) indexV13(meta types.MetadataV13) error {
	for _, module := range meta.Modules {
		if !module.HasStorage {
			continue
		}

		prefix := string(module.Storage.Prefix)
		for _, item := range module.Storage.Items {
			entry := storage.Entry{
				Module: prefix,
				Name:   string(item.Name),
				Kind:   storage.Plain,
			}

			var declared []types.StorageHasherV10
			switch {
			case item.Type.IsMap:
				declared = []types.StorageHasherV10{item.Type.AsMap.Hasher}
			case item.Type.IsDoubleMap:
				declared = []types.StorageHasherV10{
					item.Type.AsDoubleMap.Hasher,
					item.Type.AsDoubleMap.Key2Hasher,
				}
			case item.Type.IsNMap:
				declared = item.Type.AsNMap.Hashers
			}

			if len(declared) > 0 {
				hashers, err := toHashers(declared)
				if err != nil {
					return fmt.Errorf("%s.%s: %w", module.Name, item.Name, err)
				}
				entry.Hashers = hashers
				entry.Kind = kindOf(hashers)
			}

			d.add(string(module.Name), entry)
		}
	}
	return nil
}

func kindOf(hashers []storage.Hasher) storage.Kind {
	switch len(hashers) {
	case 0:
		return storage.Plain
	case 1:
		return storage.Map
	case 2:
		return storage.DoubleMap
	default:
		return storage.NMap
	}
}

func toHashers(declared []types.StorageHasherV10) (hashers []storage.Hasher, err error) {
	hashers = make([]storage.Hasher, len(declared))
	for i, d := range declared {
		hashers[i], err = toHasher(d)
		if err != nil {
			return nil, err
		}
	}
	return hashers, nil
}

func toHasher(h types.StorageHasherV10) (storage.Hasher, error) {
	switch {
	case h.IsBlake2_128:
		return storage.Blake2_128, nil
	case h.IsBlake2_256:
		return storage.Blake2_256, nil
	case h.IsBlake2_128Concat:
		return storage.Blake2_128Concat, nil
	case h.IsTwox128:
		return storage.Twox128, nil
	case h.IsTwox256:
		return storage.Twox256, nil
	case h.IsTwox64Concat:
		return storage.Twox64Concat, nil
	case h.IsIdentity:
		return storage.Identity, nil
	default:
		return 0, ErrUnknownHasher
	}
}
