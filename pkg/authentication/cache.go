// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"sync"
	"time"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

var (
	_ RefreshingFetcherInterface = (*CachingFetcher)(nil)
	_ KeySetStoreInterface       = (*MemoryStore)(nil)
)

// CachingFetcher serves key sets from a store for up to ttl.
// A failed fetch never falls back to a stored set.
type CachingFetcher struct {
	fetcher KeySetFetcherInterface
	store   KeySetStoreInterface
	ttl     time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *CachingFetcher) FetchKeys(ctx context.Context, domain string) (*SigningKeySet, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.CachingFetcher.FetchKeys")
	defer span.End()

	cached, err := c.store.Get(ctx, domain)
	if err != nil {
		c.logger.Debugf("key set cache lookup failed, fetching: %v", err)
	}

	if cached != nil {
		ks := *cached
		ks.FromCache = true
		return &ks, nil
	}

	return c.Refresh(ctx, domain)
}

// Refresh bypasses the store, fetches a fresh key set and stores it.
func (c *CachingFetcher) Refresh(ctx context.Context, domain string) (*SigningKeySet, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.CachingFetcher.Refresh")
	defer span.End()

	keySet, err := c.fetcher.FetchKeys(ctx, domain)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, domain, keySet, c.ttl); err != nil {
		c.logger.Errorf("failed to store key set: %v", err)
	}

	return keySet, nil
}

func NewCachingFetcher(
	fetcher KeySetFetcherInterface,
	store KeySetStoreInterface,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *CachingFetcher {
	return &CachingFetcher{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
		tracer:  tracer,
		logger:  logger,
	}
}

type cacheEntry struct {
	keySet    *SigningKeySet
	expiresAt time.Time
}

// MemoryStore is a process local KeySetStoreInterface.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry

	now func() time.Time
}

func (m *MemoryStore) Get(_ context.Context, domain string) (*SigningKeySet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[domain]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, nil
	}

	return e.keySet, nil
}

func (m *MemoryStore) Set(_ context.Context, domain string, keySet *SigningKeySet, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[domain] = cacheEntry{keySet: keySet, expiresAt: m.now().Add(ttl)}

	return nil
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}
