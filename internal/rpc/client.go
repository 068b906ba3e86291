// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/ChainSafe/storage-gateway/lib/common"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

var callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "storage_gateway_rpc",
	Name:      "call_duration_seconds",
	Help:      "duration of JSON-RPC calls to the node",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "result"})

// ErrEndpointScheme is returned for node endpoints which are
// neither http(s) nor ws(s) URLs.
var ErrEndpointScheme = errors.New("unsupported node endpoint scheme")

const (
	methodGetMetadata = "state_getMetadata"
	methodGetStorage  = "state_getStorage"
)

// Client is a JSON-RPC 2.0 client of a single node.
// It is safe for concurrent use.
type Client struct {
	endpoint  string
	timeout   time.Duration
	transport transport
}

// NewClient creates a client for the node at the endpoint given,
// which must start with http://, https://, ws:// or wss://.
func NewClient(endpoint string, options ...Option) (*Client, error) {
	settings := newSettings(options)

	transport, err := newTransport(endpoint, settings.httpClient)
	if err != nil {
		return nil, err
	}

	return &Client{
		endpoint:  endpoint,
		timeout:   settings.timeout,
		transport: transport,
	}, nil
}

// Call calls the method on the node with the string parameters given.
// A null or absent result is returned as a nil result and a nil error.
func (c *Client) Call(ctx context.Context, method string, params ...string) (
	result *string, err error) {
	start := time.Now()
	defer func() {
		callDuration.WithLabelValues(method, resultLabel(err)).
			Observe(time.Since(start).Seconds())
	}()

	if params == nil {
		params = []string{}
	}
	request, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", method, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	response, err := c.transport.roundTrip(ctx, request)
	if err != nil {
		logger.Debugf("calling %s on %s: %s", method, c.endpoint, err)
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}

	result = new(string)
	err = json2.DecodeClientResponse(bytes.NewReader(response), result)
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, json2.ErrNullResult):
		return nil, nil
	}

	var jsonErr *json2.Error
	if errors.As(err, &jsonErr) {
		return nil, fmt.Errorf("calling %s: %w", method, &RemoteError{
			Code:    int(jsonErr.Code),
			Message: jsonErr.Message,
		})
	}
	return nil, fmt.Errorf("calling %s: %w: %w", method, ErrMalformedResponse, err)
}

// Metadata returns the SCALE encoded runtime metadata of the node.
func (c *Client) Metadata(ctx context.Context) (metadata []byte, err error) {
	result, err := c.Call(ctx, methodGetMetadata)
	if err != nil {
		return nil, err
	} else if result == nil {
		return nil, fmt.Errorf("calling %s: %w", methodGetMetadata, ErrNullResult)
	}

	metadata, err = decodeHexResult(*result)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", methodGetMetadata, err)
	}
	return metadata, nil
}

// Storage returns the storage value at the key given. The boolean
// returned is false if the node has no value for the key.
func (c *Client) Storage(ctx context.Context, key []byte) (value []byte, ok bool, err error) {
	result, err := c.Call(ctx, methodGetStorage, common.BytesToHex(key))
	if err != nil {
		return nil, false, err
	} else if result == nil {
		return nil, false, nil
	}

	value, err = decodeHexResult(*result)
	if err != nil {
		return nil, false, fmt.Errorf("calling %s: %w", methodGetStorage, err)
	}
	return value, true, nil
}

func decodeHexResult(result string) ([]byte, error) {
	b, err := common.HexToBytes(result)
	if err != nil {
		return nil, fmt.Errorf("%w: result %q: %w", ErrMalformedResponse, result, err)
	}
	return b, nil
}

func resultLabel(err error) string {
	var remoteErr *RemoteError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrTransport):
		return "transport_error"
	case errors.As(err, &remoteErr):
		return "remote_error"
	default:
		return "malformed"
	}
}

type settings struct {
	httpClient *http.Client
	timeout    time.Duration
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}

	if s.httpClient == nil {
		s.httpClient = &http.Client{}
	}

	return s
}

// Option is a functional option for the client.
type Option func(s *settings)

// HTTPClient sets the HTTP client used for http(s) endpoints.
// It defaults to a client without timeout.
func HTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// Timeout bounds the duration of each call. Zero means
// calls are only bound by their context.
func Timeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}
