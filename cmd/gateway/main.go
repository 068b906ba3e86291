// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var dumpConfigCommand = cli.Command{
	Name:     "dumpconfig",
	Usage:    "Print the effective TOML configuration",
	Category: "CONFIGURATION",
	Action:   dumpConfigAction,
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "storage-gateway"
	app.Usage = "HTTP gateway to the storage of a Substrate node"
	app.Version = "0.1.0"
	app.Flags = GlobalFlags
	app.Action = gatewayAction
	app.Commands = []cli.Command{dumpConfigCommand}
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}

// gatewayAction runs the gateway until SIGINT or SIGTERM.
func gatewayAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	err = setLogLevels(cfg)
	if err != nil {
		return err
	}

	servers, err := newServers(cfg)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("querying node at %s", cfg.RPC.Endpoint)
	err = runServers(runCtx, servers)
	if err != nil {
		return err
	}

	logger.Info("gateway stopped")
	return nil
}

func dumpConfigAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	_, err = ctx.App.Writer.Write(data)
	return err
}
