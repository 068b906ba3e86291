// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/storage-gateway/config"
	"github.com/ChainSafe/storage-gateway/internal/gateway"
	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/ChainSafe/storage-gateway/internal/rpc"
	"github.com/ChainSafe/storage-gateway/lib/metadata"
	"github.com/urfave/cli"
)

// makeConfig loads the configuration file given with --config, or the
// default configuration, then overrides it with the flags set and
// validates the result.
func makeConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	cfg = config.DefaultConfig()
	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	setString(ctx, NodeFlag.Name, &cfg.RPC.Endpoint)
	setString(ctx, RPCTimeoutFlag.Name, &cfg.RPC.Timeout)
	setString(ctx, ListenFlag.Name, &cfg.HTTP.ListeningAddress)
	setString(ctx, LogFlag.Name, &cfg.Global.LogLvl)
	setString(ctx, LogGatewayLevelFlag.Name, &cfg.Log.GatewayLvl)
	setString(ctx, LogRPCLevelFlag.Name, &cfg.Log.RPCLvl)
	setString(ctx, LogMetadataLevelFlag.Name, &cfg.Log.MetadataLvl)
	setString(ctx, MetricsAddressFlag.Name, &cfg.Metrics.ListeningAddress)
	setString(ctx, PprofAddressFlag.Name, &cfg.Pprof.ListeningAddress)
	if ctx.GlobalIsSet(MetricsFlag.Name) {
		cfg.Metrics.Enabled = ctx.GlobalBool(MetricsFlag.Name)
	}
	if ctx.GlobalIsSet(PprofFlag.Name) {
		cfg.Pprof.Enabled = ctx.GlobalBool(PprofFlag.Name)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func setString(ctx *cli.Context, flagName string, field *string) {
	if ctx.GlobalIsSet(flagName) {
		*field = ctx.GlobalString(flagName)
	}
}

// setLogLevels patches the global logger and the package loggers.
// Package levels left empty follow the global level.
func setLogLevels(cfg *config.Config) error {
	global, err := log.ParseLevel(cfg.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("global log level: %w", err)
	}
	log.Patch(log.SetLevel(global))

	for _, pkg := range []struct {
		name  string
		level string
		set   func(log.Level)
	}{
		{name: "gateway", level: cfg.Log.GatewayLvl, set: gateway.SetLogLevel},
		{name: "rpc", level: cfg.Log.RPCLvl, set: rpc.SetLogLevel},
		{name: "metadata", level: cfg.Log.MetadataLvl, set: metadata.SetLogLevel},
	} {
		level := global
		if pkg.level != "" {
			level, err = log.ParseLevel(pkg.level)
			if err != nil {
				return fmt.Errorf("%s log level: %w", pkg.name, err)
			}
		}
		pkg.set(level)
	}

	return nil
}
