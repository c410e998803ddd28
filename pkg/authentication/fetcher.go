// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

const jwksDependency = "jwks"

var _ KeySetFetcherInterface = (*HTTPFetcher)(nil)

// JWKSURL is the well-known key set location for a trust domain.
func JWKSURL(domain string) string {
	return fmt.Sprintf("https://%s/.well-known/jwks.json", domain)
}

// HTTPFetcher downloads the key set on every call, there is no caching and no retry.
type HTTPFetcher struct {
	client     *resty.Client
	httpClient *http.Client
	jwksURL    string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type FetcherOption func(*HTTPFetcher)

// WithJWKSURL replaces the well-known location, e.g. with a discovered jwks_uri.
func WithJWKSURL(url string) FetcherOption {
	return func(f *HTTPFetcher) {
		f.jwksURL = url
	}
}

func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.httpClient = c
	}
}

func (f *HTTPFetcher) FetchKeys(ctx context.Context, domain string) (*SigningKeySet, error) {
	ctx, span := f.tracer.Start(ctx, "authentication.HTTPFetcher.FetchKeys")
	defer span.End()

	url := f.jwksURL
	if url == "" {
		url = JWKSURL(domain)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		f.setAvailability(0)
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", url, err)
	}

	if resp.IsError() {
		f.setAvailability(0)
		return nil, fmt.Errorf("failed to fetch JWKS from %s: unexpected status %d", url, resp.StatusCode())
	}

	keySet, err := ParseKeySet(resp.Body())
	if err != nil {
		f.setAvailability(0)
		return nil, err
	}

	f.setAvailability(1)
	f.logger.Debugf("fetched %d signing keys from %s", keySet.Len(), url)

	return keySet, nil
}

func (f *HTTPFetcher) setAvailability(v float64) {
	if err := f.monitor.SetDependencyAvailability(map[string]string{"component": jwksDependency}, v); err != nil {
		f.logger.Debugf("error setting jwks availability metric: %v", err)
	}
}

// NewHTTPFetcher builds a fetcher with a bounded timeout, non positive timeouts use DefaultKeySetTimeout.
func NewHTTPFetcher(
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
	opts ...FetcherOption,
) *HTTPFetcher {
	f := &HTTPFetcher{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.httpClient == nil {
		f.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	if timeout <= 0 {
		timeout = DefaultKeySetTimeout
	}

	f.client = resty.NewWithClient(f.httpClient).
		SetTimeout(timeout).
		SetRetryCount(0)

	return f
}
