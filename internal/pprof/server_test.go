// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Settings_setDefaults(t *testing.T) {
	t.Parallel()

	settings := Settings{MutexProfileRate: 1}
	settings.setDefaults()

	expected := Settings{
		ListeningAddress: "localhost:6060",
		MutexProfileRate: 1,
	}
	assert.Equal(t, expected, settings)
}

func Test_NewServer(t *testing.T) {
	t.Parallel()

	logger := log.New(log.SetWriter(io.Discard))
	server := NewServer(Settings{ListeningAddress: "127.0.0.1:0"}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error)
	go server.Run(ctx, ready, done)
	<-ready

	response, err := http.Get("http://" + server.GetAddress() + "/debug/pprof/cmdline")
	require.NoError(t, err)
	_, err = io.Copy(io.Discard, response.Body)
	require.NoError(t, err)
	require.NoError(t, response.Body.Close())
	assert.Equal(t, http.StatusOK, response.StatusCode)

	cancel()
	assert.NoError(t, <-done)
}
