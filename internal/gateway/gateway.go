// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/ChainSafe/storage-gateway/lib/storage"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "gateway"))

// Action is what a request asks the gateway for.
type Action uint8

const (
	// ActionMeta returns the raw metadata of the node.
	ActionMeta Action = iota
	// ActionStorage returns the value of a storage entry.
	ActionStorage
)

func (a Action) String() string {
	switch a {
	case ActionMeta:
		return "meta"
	case ActionStorage:
		return "storage"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Request is a parsed gateway request.
type Request struct {
	Action Action
	Module string
	Item   string
	// Key1 and Key2 are the raw k and k2 query parameters.
	Key1 string
	Key2 string
}

// Response is the outcome of a request. Body holds the raw
// value on success and an optional diagnostic otherwise.
type Response struct {
	Status int
	Body   []byte
	Err    error
}

// Gateway answers requests by querying the node.
type Gateway struct {
	node     Node
	resolver Resolver
}

// New creates a gateway.
func New(node Node, resolver Resolver) *Gateway {
	return &Gateway{
		node:     node,
		resolver: resolver,
	}
}

// Handle answers the request given.
func (g *Gateway) Handle(ctx context.Context, request Request) Response {
	var (
		value []byte
		err   error
	)

	switch request.Action {
	case ActionMeta:
		value, err = g.node.Metadata(ctx)
	case ActionStorage:
		value, err = g.storage(ctx, request)
	default:
		panic(fmt.Sprintf("action %s not implemented", request.Action))
	}

	if err != nil {
		return errorResponse(err)
	}

	return Response{
		Status: http.StatusOK,
		Body:   value,
	}
}

func (g *Gateway) storage(ctx context.Context, request Request) (value []byte, err error) {
	entry, ok, err := g.resolver.Resolve(ctx, request.Module, request.Item)
	if err != nil {
		return nil, fmt.Errorf("resolving %s/%s: %w", request.Module, request.Item, err)
	} else if !ok {
		return nil, fmt.Errorf("%w: storage entry %s/%s", ErrNotFound, request.Module, request.Item)
	}

	// Sub-keys beyond the entry arity are ignored, not parsed.
	var key1, key2 []byte
	if entry.Kind != storage.Plain {
		key1, err = parseKey(request.Key1)
		if err != nil {
			return nil, fmt.Errorf("parsing k: %w", err)
		}
	}
	if entry.Kind == storage.DoubleMap {
		key2, err = parseKey(request.Key2)
		if err != nil {
			return nil, fmt.Errorf("parsing k2: %w", err)
		}
	}

	key, err := storage.Key(entry, key1, key2)
	if err != nil {
		return nil, fmt.Errorf("deriving key of %s: %w", entry, err)
	}

	logger.Tracef("querying %s at key 0x%x", entry, key)

	value, ok, err = g.node.Storage(ctx, key)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: no value for %s", ErrNotFound, entry)
	}

	return value, nil
}
