// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	ks := keySetOf(t, newTestKey(t, "K1"))

	got, err := store.Get(context.Background(), testDomain)
	if err != nil || got != nil {
		t.Fatalf("expected a miss on an empty store, got %v %v", got, err)
	}

	if err := store.Set(context.Background(), testDomain, ks, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := store.Get(context.Background(), testDomain); got != ks {
		t.Errorf("expected the stored key set")
	}

	if got, _ := store.Get(context.Background(), "tea.eu.auth0.com"); got != nil {
		t.Errorf("expected entries to be keyed by domain")
	}

	now = now.Add(time.Minute)

	if got, _ := store.Get(context.Background(), testDomain); got != nil {
		t.Errorf("expected the entry to expire")
	}
}

func TestCachingFetcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fresh := keySetOf(t, newTestKey(t, "K1"))
	rotated := keySetOf(t, newTestKey(t, "K2"))

	upstream := NewMockKeySetFetcherInterface(ctrl)
	gomock.InOrder(
		upstream.EXPECT().FetchKeys(gomock.Any(), testDomain).Return(fresh, nil),
		upstream.EXPECT().FetchKeys(gomock.Any(), testDomain).Return(rotated, nil),
	)

	fetcher := NewCachingFetcher(upstream, NewMemoryStore(), time.Hour, tracing.NewNoopTracer(), logging.NewNoopLogger())

	first, err := fetcher.FetchKeys(context.Background(), testDomain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.FromCache {
		t.Errorf("expected the first fetch to be fresh")
	}

	second, err := fetcher.FetchKeys(context.Background(), testDomain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.FromCache {
		t.Errorf("expected the second fetch to be served from the store")
	}

	if first.FromCache {
		t.Errorf("serving from the store must not alter the stored set")
	}

	refreshed, err := fetcher.Refresh(context.Background(), testDomain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := refreshed.Lookup("K2"); !ok || refreshed.FromCache {
		t.Errorf("expected the refreshed key set")
	}

	third, _ := fetcher.FetchKeys(context.Background(), testDomain)
	if _, ok := third.Lookup("K2"); !ok {
		t.Errorf("expected the refresh to overwrite the stored set")
	}
}

func TestCachingFetcherFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ks := keySetOf(t, newTestKey(t, "K1"))

	upstream := NewMockKeySetFetcherInterface(ctrl)
	store := NewMockKeySetStoreInterface(ctrl)

	fetcher := NewCachingFetcher(upstream, store, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())

	// store lookup errors fall through to the upstream fetcher
	store.EXPECT().Get(gomock.Any(), testDomain).Return(nil, errors.New("redis: connection refused"))
	upstream.EXPECT().FetchKeys(gomock.Any(), testDomain).Return(ks, nil)
	store.EXPECT().Set(gomock.Any(), testDomain, ks, time.Minute).Return(errors.New("redis: connection refused"))

	got, err := fetcher.FetchKeys(context.Background(), testDomain)
	if err != nil || got != ks {
		t.Fatalf("expected the fetched key set, got %v %v", got, err)
	}

	// a failed refresh is not replaced by stale data and nothing is stored
	upstream.EXPECT().FetchKeys(gomock.Any(), testDomain).Return(nil, errors.New("timeout"))

	if _, err := fetcher.Refresh(context.Background(), testDomain); err == nil {
		t.Errorf("expected refresh error")
	}
}
