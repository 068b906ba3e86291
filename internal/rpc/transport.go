// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

type transport interface {
	roundTrip(ctx context.Context, request []byte) (response []byte, err error)
}

func newTransport(endpoint string, httpClient *http.Client) (transport, error) {
	switch {
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		return &httpTransport{endpoint: endpoint, client: httpClient}, nil
	case strings.HasPrefix(endpoint, "ws://"), strings.HasPrefix(endpoint, "wss://"):
		return &wsTransport{endpoint: endpoint, dialer: websocket.DefaultDialer}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrEndpointScheme, endpoint)
	}
}

type httpTransport struct {
	endpoint string
	client   *http.Client
}

func (t *httpTransport) roundTrip(ctx context.Context, body []byte) (data []byte, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create HTTP request: %w", ErrTransport, err)
	}

	const contentType = "application/json"
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Accept", contentType)

	response, err := t.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	data, err = io.ReadAll(response.Body)
	if err != nil {
		_ = response.Body.Close()
		return nil, fmt.Errorf("%w: cannot read HTTP response body: %w", ErrTransport, err)
	}

	err = response.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot close HTTP response body: %w", ErrTransport, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: HTTP status %d", ErrTransport, response.StatusCode)
	}

	return data, nil
}

// wsTransport opens one websocket connection per call.
type wsTransport struct {
	endpoint string
	dialer   *websocket.Dialer
}

func (t *wsTransport) roundTrip(ctx context.Context, body []byte) (data []byte, err error) {
	conn, _, err := t.dialer.DialContext(ctx, t.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.SetReadDeadline(deadline)
	}

	// unblock ReadMessage if the context is cancelled without deadline
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	err = conn.WriteMessage(websocket.TextMessage, body)
	if err != nil {
		return nil, fmt.Errorf("%w: writing websocket message: %w", ErrTransport, err)
	}

	_, data, err = conn.ReadMessage()
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("%w: reading websocket message: %w", ErrTransport, err)
	}

	return data, nil
}
