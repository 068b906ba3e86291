// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is wrapped by failures to reach the node,
	// including non-2xx HTTP statuses.
	ErrTransport = errors.New("node transport failed")
	// ErrMalformedResponse is wrapped when the node response is not
	// a valid JSON-RPC 2.0 envelope or carries an unexpected result.
	ErrMalformedResponse = errors.New("malformed node response")
	// ErrNullResult is returned by the helpers when the node
	// answered with a null or absent result.
	ErrNullResult = errors.New("node returned no result")
)

// RemoteError is an error object returned by the node.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}
