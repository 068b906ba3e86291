// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/naoina/toml"
)

// Config is the gateway configuration, as read from its TOML file.
type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	RPC     RPCConfig     `toml:"rpc"`
	HTTP    HTTPConfig    `toml:"http"`
	Metrics MetricsConfig `toml:"metrics"`
	Pprof   PprofConfig   `toml:"pprof"`
}

// GlobalConfig holds settings applying to the whole process.
type GlobalConfig struct {
	LogLvl string `toml:"log" validate:"required,loglevel"`
}

// LogConfig holds per package log levels. Empty levels
// default to the global log level.
type LogConfig struct {
	GatewayLvl  string `toml:"gateway,omitempty" validate:"omitempty,loglevel"`
	RPCLvl      string `toml:"rpc,omitempty" validate:"omitempty,loglevel"`
	MetadataLvl string `toml:"metadata,omitempty" validate:"omitempty,loglevel"`
}

// RPCConfig is the configuration of the node client.
type RPCConfig struct {
	// Endpoint is the http(s) or ws(s) URL of the node.
	Endpoint string `toml:"endpoint" validate:"required,endpoint"`
	// Timeout bounds each call to the node, such as "10s".
	Timeout string `toml:"timeout" validate:"required,duration"`
}

// HTTPConfig is the configuration of the gateway HTTP server.
type HTTPConfig struct {
	ListeningAddress  string `toml:"listen" validate:"required,hostname_port"`
	ReadHeaderTimeout string `toml:"read-header-timeout" validate:"required,duration"`
	ShutdownTimeout   string `toml:"shutdown-timeout" validate:"required,duration"`
}

// MetricsConfig is the configuration of the Prometheus metrics server.
type MetricsConfig struct {
	Enabled          bool   `toml:"enabled"`
	ListeningAddress string `toml:"listen" validate:"required_if=Enabled true,omitempty,hostname_port"`
}

// PprofConfig is the configuration of the profiling server.
type PprofConfig struct {
	Enabled          bool   `toml:"enabled"`
	ListeningAddress string `toml:"listen" validate:"required_if=Enabled true,omitempty,hostname_port"`
	BlockProfileRate int    `toml:"block-rate" validate:"gte=0"`
	MutexProfileRate int    `toml:"mutex-rate" validate:"gte=0"`
}

// DefaultConfig returns the default gateway configuration,
// which queries a local node.
func DefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl: "info",
		},
		RPC: RPCConfig{
			Endpoint: "http://localhost:9933",
			Timeout:  "10s",
		},
		HTTP: HTTPConfig{
			ListeningAddress:  ":8080",
			ReadHeaderTimeout: "1s",
			ShutdownTimeout:   "3s",
		},
		Metrics: MetricsConfig{
			ListeningAddress: "localhost:9876",
		},
		Pprof: PprofConfig{
			ListeningAddress: "localhost:6060",
		},
	}
}

// Load reads the TOML file at the path given over the default configuration.
// Keys absent from the file keep their default value.
func Load(path string) (cfg *Config, err error) {
	cfg = DefaultConfig()

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening configuration file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing configuration file: %w", closeErr)
		}
	}()

	err = toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(*c)
}

// TimeoutDuration returns the parsed node call timeout.
// It must only be called on a validated configuration.
func (c RPCConfig) TimeoutDuration() time.Duration {
	return mustParseDuration(c.Timeout)
}

// ReadHeaderTimeoutDuration returns the parsed read header timeout.
// It must only be called on a validated configuration.
func (c HTTPConfig) ReadHeaderTimeoutDuration() time.Duration {
	return mustParseDuration(c.ReadHeaderTimeout)
}

// ShutdownTimeoutDuration returns the parsed shutdown timeout.
// It must only be called on a validated configuration.
func (c HTTPConfig) ShutdownTimeoutDuration() time.Duration {
	return mustParseDuration(c.ShutdownTimeout)
}

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
