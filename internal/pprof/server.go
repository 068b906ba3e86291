// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/ChainSafe/storage-gateway/internal/httpserver"
)

// Settings are the settings of the profiling server.
type Settings struct {
	// ListeningAddress defaults to localhost:6060.
	ListeningAddress string
	// See runtime.SetBlockProfileRate
	// Set to 0 to disable profiling.
	BlockProfileRate int
	// See runtime.SetMutexProfileFraction
	// Set to 0 to disable profiling.
	MutexProfileRate int
}

func (s *Settings) setDefaults() {
	if s.ListeningAddress == "" {
		s.ListeningAddress = "localhost:6060"
	}
}

// NewServer sets the process block and mutex profile rates and
// creates the HTTP server exposing the /debug/pprof/ endpoints.
func NewServer(settings Settings, logger httpserver.Logger,
	options ...httpserver.Option) *httpserver.Server {
	settings.setDefaults()

	runtime.SetBlockProfileRate(settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(settings.MutexProfileRate)

	handler := http.NewServeMux()
	handler.HandleFunc("/debug/pprof/", pprof.Index)
	handler.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	handler.HandleFunc("/debug/pprof/profile", pprof.Profile)
	handler.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	handler.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return httpserver.New("pprof", settings.ListeningAddress, handler, logger, options...)
}
