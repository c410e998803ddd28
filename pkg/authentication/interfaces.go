// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"time"
)

type KeySetFetcherInterface interface {
	// FetchKeys returns the signing key set published for the given trust domain
	FetchKeys(ctx context.Context, domain string) (*SigningKeySet, error)
}

// RefreshingFetcherInterface is implemented by fetchers that may serve a cached key set
// and can be forced to fetch a fresh one
type RefreshingFetcherInterface interface {
	KeySetFetcherInterface
	Refresh(ctx context.Context, domain string) (*SigningKeySet, error)
}

type KeySetStoreInterface interface {
	// Get returns nil and no error on a cache miss
	Get(ctx context.Context, domain string) (*SigningKeySet, error)
	Set(ctx context.Context, domain string, keySet *SigningKeySet, ttl time.Duration) error
}

type AuthorizerInterface interface {
	// Authorize verifies the bearer token of the request headers and checks the required permission
	Authorize(ctx context.Context, headers http.Header, permission string) (Claims, error)
}
