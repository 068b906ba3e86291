// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"errors"
	"net/http"

	"github.com/ChainSafe/storage-gateway/internal/rpc"
	"github.com/ChainSafe/storage-gateway/lib/metadata"
	"github.com/ChainSafe/storage-gateway/lib/storage"
)

var (
	// ErrNotFound is returned when the storage entry or its value does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadKey is returned for sub-key query parameters that cannot be decoded.
	ErrBadKey = errors.New("bad storage sub-key")
)

// errorResponse classifies the error given into its response.
// Remote and decoding errors carry their message as body, client
// errors carry the full error text, other errors have no body.
func errorResponse(err error) Response {
	response := Response{Err: err}

	var remoteErr *rpc.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		response.Status = http.StatusInternalServerError
		response.Body = []byte(remoteErr.Message)
	case errors.Is(err, metadata.ErrDecode):
		response.Status = http.StatusInternalServerError
		response.Body = []byte(err.Error())
	case errors.Is(err, rpc.ErrTransport):
		response.Status = http.StatusBadGateway
	case errors.Is(err, rpc.ErrMalformedResponse):
		response.Status = http.StatusInternalServerError
	case errors.Is(err, ErrNotFound), errors.Is(err, rpc.ErrNullResult):
		response.Status = http.StatusNotFound
	case errors.Is(err, storage.ErrMissingKey), errors.Is(err, ErrBadKey):
		response.Status = http.StatusBadRequest
		response.Body = []byte(err.Error())
	case errors.Is(err, storage.ErrUnsupportedKind):
		response.Status = http.StatusNotImplemented
		response.Body = []byte(err.Error())
	default:
		response.Status = http.StatusInternalServerError
	}

	return response
}
