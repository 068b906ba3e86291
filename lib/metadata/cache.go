// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metadata"))

var (
	fetchCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storage_gateway_metadata",
		Name:      "fetch_total",
		Help:      "number of metadata fetch and decode attempts by result",
	}, []string{"result"})
	entriesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storage_gateway_metadata",
		Name:      "storage_entries",
		Help:      "number of storage entries in the cached metadata",
	})
)

// Fetcher fetches the SCALE encoded metadata of the node.
type Fetcher interface {
	Metadata(ctx context.Context) ([]byte, error)
}

// Cache holds the metadata Document for the lifetime of the process.
// It is filled on the first Get call and never changes afterwards.
// Failed fetches are not stored so a later Get tries again.
type Cache struct {
	fetcher Fetcher
	group   singleflight.Group

	mutex    sync.RWMutex
	document *Document
}

// NewCache creates an empty cache using the fetcher given.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{
		fetcher: fetcher,
	}
}

// Get returns the cached document, fetching and decoding it first
// if the cache is empty. Concurrent callers on an empty cache share
// a single fetch and all observe the same document.
// The shared fetch is detached from the cancellation of the caller
// starting it; a cancelled caller only stops waiting for it.
func (c *Cache) Get(ctx context.Context) (*Document, error) {
	if document := c.load(); document != nil {
		return document, nil
	}

	flight := c.group.DoChan("metadata", func() (interface{}, error) {
		return c.populate(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for metadata: %w", ctx.Err())
	case result := <-flight:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*Document), nil
	}
}

func (c *Cache) load() *Document {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.document
}

func (c *Cache) populate(ctx context.Context) (*Document, error) {
	// a previous flight may have completed between load and Do
	if document := c.load(); document != nil {
		return document, nil
	}

	raw, err := c.fetcher.Metadata(ctx)
	if err != nil {
		fetchCounter.WithLabelValues("fetch_error").Inc()
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}

	document, err := Decode(raw)
	if err != nil {
		fetchCounter.WithLabelValues("decode_error").Inc()
		logger.Warnf("metadata of %d bytes not cached: %s", len(raw), err)
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.document == nil {
		c.document = document
		fetchCounter.WithLabelValues("success").Inc()
		entriesGauge.Set(float64(document.Len()))
		logger.Infof("cached metadata v%d with %d storage entries",
			document.Version(), document.Len())
	}
	return c.document, nil
}
