// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

func jwksServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, string) {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("failed to parse server url: %v", err)
	}

	return srv, u.Host
}

func TestJWKSURL(t *testing.T) {
	if got := JWKSURL(testDomain); got != "https://coffee.eu.auth0.com/.well-known/jwks.json" {
		t.Errorf("unexpected JWKS url %q", got)
	}
}

func TestHTTPFetcherFetchKeys(t *testing.T) {
	k1 := newTestKey(t, "K1")
	doc := jwksDocument(t, k1)

	var calls atomic.Int32
	srv, domain := jwksServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/.well-known/jwks.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	})

	fetcher := NewHTTPFetcher(time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(), WithHTTPClient(srv.Client()))

	for i := 0; i < 2; i++ {
		ks, err := fetcher.FetchKeys(context.Background(), domain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !slices.Equal(ks.KeyIDs(), []string{"K1"}) {
			t.Errorf("unexpected key ids %v", ks.KeyIDs())
		}

		if ks.FromCache {
			t.Errorf("expected a fresh key set")
		}
	}

	if n := calls.Load(); n != 2 {
		t.Errorf("expected one request per call, got %d", n)
	}
}

func TestHTTPFetcherFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
		},
		{
			name: "no keys array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"issuer":"https://coffee.eu.auth0.com/"}`))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv, domain := jwksServer(t, test.handler)

			fetcher := NewHTTPFetcher(time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(), WithHTTPClient(srv.Client()))

			if _, err := fetcher.FetchKeys(context.Background(), domain); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestHTTPFetcherTimeout(t *testing.T) {
	release := make(chan struct{})
	srv, domain := jwksServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	fetcher := NewHTTPFetcher(50*time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(), WithHTTPClient(srv.Client()))

	start := time.Now()
	if _, err := fetcher.FetchKeys(context.Background(), domain); err == nil {
		t.Fatalf("expected timeout error")
	}

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("fetch was not bounded by the timeout, took %v", elapsed)
	}
}

func TestHTTPFetcherWithJWKSURL(t *testing.T) {
	k2 := newTestKey(t, "K2")
	doc := jwksDocument(t, k2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/keys" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(doc)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(0, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(), WithJWKSURL(srv.URL+"/keys"))

	ks, err := fetcher.FetchKeys(context.Background(), "ignored.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := ks.Lookup("K2"); !ok {
		t.Errorf("expected K2 in key set")
	}
}
