// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/storage-gateway/config"
	"github.com/ChainSafe/storage-gateway/internal/gateway"
	"github.com/ChainSafe/storage-gateway/internal/httpserver"
	"github.com/ChainSafe/storage-gateway/internal/metrics"
	"github.com/ChainSafe/storage-gateway/internal/pprof"
	"github.com/ChainSafe/storage-gateway/internal/rpc"
	"github.com/ChainSafe/storage-gateway/lib/metadata"
	"github.com/prometheus/client_golang/prometheus"
)

var errServerExited = errors.New("server exited unexpectedly")

// newServers wires the node client, the metadata cache and the gateway
// and returns the HTTP servers enabled by the configuration.
func newServers(cfg *config.Config) (servers []*httpserver.Server, err error) {
	client, err := rpc.NewClient(cfg.RPC.Endpoint, rpc.Timeout(cfg.RPC.TimeoutDuration()))
	if err != nil {
		return nil, fmt.Errorf("creating node client: %w", err)
	}

	resolver := metadata.NewResolver(metadata.NewCache(client))
	handler := gateway.NewHandler(gateway.New(client, resolver))

	options := []httpserver.Option{
		httpserver.ReadHeaderTimeout(cfg.HTTP.ReadHeaderTimeoutDuration()),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeoutDuration()),
	}

	servers = append(servers, httpserver.New("gateway", cfg.HTTP.ListeningAddress,
		handler, logger, options...))

	if cfg.Metrics.Enabled {
		servers = append(servers, metrics.NewServer(cfg.Metrics.ListeningAddress,
			prometheus.DefaultGatherer, logger, options...))
	}

	if cfg.Pprof.Enabled {
		settings := pprof.Settings{
			ListeningAddress: cfg.Pprof.ListeningAddress,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		}
		servers = append(servers, pprof.NewServer(settings, logger, options...))
	}

	return servers, nil
}

// runServers starts the servers in order and runs them until ctx is
// canceled or one of them exits. All started servers are shut down
// before it returns.
func runServers(ctx context.Context, servers []*httpserver.Server) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, len(servers))
	running := 0
	for _, server := range servers {
		ready := make(chan struct{})
		go server.Run(ctx, ready, done)

		select {
		case <-ready:
			running++
		case err = <-done:
			cancel()
			return waitServers(done, running, err)
		}
	}

	select {
	case <-ctx.Done():
	case err = <-done:
		running--
		if err == nil {
			err = errServerExited
		}
		cancel()
	}

	return waitServers(done, running, err)
}

func waitServers(done <-chan error, running int, err error) error {
	for ; running > 0; running-- {
		serverErr := <-done
		if err == nil {
			err = serverErr
		}
	}
	return err
}
