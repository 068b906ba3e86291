// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import "fmt"

// Kind is the shape of a storage entry.
type Kind uint8

const (
	// Plain entries hold a single value and take no key.
	Plain Kind = iota
	// Map entries take one key.
	Map
	// DoubleMap entries take two keys.
	DoubleMap
	// NMap entries take three keys or more. Keys cannot be derived for them.
	NMap
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Map:
		return "Map"
	case DoubleMap:
		return "DoubleMap"
	case NMap:
		return "NMap"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entry describes a storage item as declared in the node metadata.
type Entry struct {
	// Module is the storage prefix of the pallet owning the entry.
	Module string
	// Name is the storage item name.
	Name string
	Kind Kind
	// Hashers has one hasher per key.
	Hashers []Hasher
}

// NewPlain returns a plain entry.
func NewPlain(module, name string) Entry {
	return Entry{Module: module, Name: name, Kind: Plain}
}

// NewMap returns a map entry hashing its key with the hasher given.
func NewMap(module, name string, hasher Hasher) Entry {
	return Entry{Module: module, Name: name, Kind: Map, Hashers: []Hasher{hasher}}
}

// NewDoubleMap returns a double map entry hashing its first key with
// hasher1 and its second key with hasher2.
func NewDoubleMap(module, name string, hasher1, hasher2 Hasher) Entry {
	return Entry{Module: module, Name: name, Kind: DoubleMap, Hashers: []Hasher{hasher1, hasher2}}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s.%s (%s %v)", e.Module, e.Name, e.Kind, e.Hashers)
}
