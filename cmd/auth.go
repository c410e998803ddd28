// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/coffee-shop-service/internal/config"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

// newAuthorizer builds the token authorizer, store is only used when cacheTTL is positive
func newAuthorizer(
	ctx context.Context,
	specs config.AuthSpec,
	store authentication.KeySetStoreInterface,
	cacheTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*authentication.Authorizer, error) {
	authConfig := authentication.Config{
		Domain:        specs.AuthDomain,
		Audience:      specs.APIAudience,
		Algorithms:    specs.Algorithms,
		KeySetTimeout: specs.JWKSFetchTimeout,
	}

	opts, err := fetcherOptions(ctx, specs, authConfig.Issuer(), logger)
	if err != nil {
		return nil, err
	}

	var fetcher authentication.KeySetFetcherInterface = authentication.NewHTTPFetcher(
		specs.JWKSFetchTimeout,
		tracer,
		monitor,
		logger,
		opts...,
	)

	if cacheTTL > 0 && store != nil {
		logger.Infof("JWKS caching enabled with ttl %v", cacheTTL)
		fetcher = authentication.NewCachingFetcher(fetcher, store, cacheTTL, tracer, logger)
	}

	return authentication.NewAuthorizer(authConfig, fetcher, tracer, logger)
}

// fetcherOptions picks the JWKS location: explicit url, then OIDC discovery, then the well-known path
func fetcherOptions(ctx context.Context, specs config.AuthSpec, issuer string, logger logging.LoggerInterface) ([]authentication.FetcherOption, error) {
	if specs.JWKSURL != "" {
		return []authentication.FetcherOption{authentication.WithJWKSURL(specs.JWKSURL)}, nil
	}

	if !specs.JWKSDiscovery {
		return nil, nil
	}

	timeout := specs.JWKSFetchTimeout
	if timeout <= 0 {
		timeout = authentication.DefaultKeySetTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	jwksURL, err := authentication.DiscoverJWKSURL(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover jwks_uri for %s: %w", issuer, err)
	}

	logger.Infof("Using discovered JWKS url %s", jwksURL)

	return []authentication.FetcherOption{authentication.WithJWKSURL(jwksURL)}, nil
}
