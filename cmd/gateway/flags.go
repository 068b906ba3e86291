// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

const levelsUsage = "Supports levels crit (silent), eror, warn, info, dbug and trce (trace)"

var (
	// ConfigFlag is the path of the TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// NodeFlag is the JSON-RPC endpoint of the node
	NodeFlag = cli.StringFlag{
		Name:  "node",
		Usage: "Node JSON-RPC endpoint, eg. http://localhost:9933 or ws://localhost:9944",
	}
	// RPCTimeoutFlag bounds each node call
	RPCTimeoutFlag = cli.StringFlag{
		Name:  "rpc-timeout",
		Usage: "Timeout of each node call, eg. 10s",
	}
	// ListenFlag is the gateway listening address
	ListenFlag = cli.StringFlag{
		Name:  "listen",
		Usage: "Gateway HTTP listening address, eg. :8080",
	}
)

var (
	// LogFlag is the global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. " + levelsUsage,
	}
	// LogGatewayLevelFlag is the gateway package log level
	LogGatewayLevelFlag = cli.StringFlag{
		Name:  "log-gateway",
		Usage: "Gateway package log level. " + levelsUsage,
	}
	// LogRPCLevelFlag is the rpc package log level
	LogRPCLevelFlag = cli.StringFlag{
		Name:  "log-rpc",
		Usage: "RPC package log level. " + levelsUsage,
	}
	// LogMetadataLevelFlag is the metadata package log level
	LogMetadataLevelFlag = cli.StringFlag{
		Name:  "log-metadata",
		Usage: "Metadata package log level. " + levelsUsage,
	}
)

var (
	// MetricsFlag enables the metrics server
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Serve Prometheus metrics",
	}
	// MetricsAddressFlag is the metrics server listening address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Metrics server listening address, eg. localhost:9876",
	}
	// PprofFlag enables the profiling server
	PprofFlag = cli.BoolFlag{
		Name:  "pprof",
		Usage: "Serve pprof profiles",
	}
	// PprofAddressFlag is the profiling server listening address
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "Profiling server listening address, eg. localhost:6060",
	}
)

// GlobalFlags are the flags of every command.
var GlobalFlags = []cli.Flag{
	ConfigFlag,
	NodeFlag,
	RPCTimeoutFlag,
	ListenFlag,
	LogFlag,
	LogGatewayLevelFlag,
	LogRPCLevelFlag,
	LogMetadataLevelFlag,
	MetricsFlag,
	MetricsAddressFlag,
	PprofFlag,
	PprofAddressFlag,
}
