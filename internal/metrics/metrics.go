// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"net/http"

	"github.com/ChainSafe/storage-gateway/internal/httpserver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultAddress is the default listening address of the metrics server.
const DefaultAddress = "localhost:9876"

// NewServer creates the HTTP server exposing the metrics
// of the registry given at /metrics.
func NewServer(address string, gatherer prometheus.Gatherer, logger httpserver.Logger,
	options ...httpserver.Option) *httpserver.Server {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return httpserver.New("metrics", address, m, logger, options...)
}
