// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

// DiscoverJWKSURL reads jwks_uri from the issuer's OpenID configuration.
// It is an alternative to the fixed /.well-known/jwks.json location.
func DiscoverJWKSURL(ctx context.Context, issuer string) (string, error) {
	return discoverJWKSURL(oidc.ClientContext(ctx, &otelHTTPClient), issuer)
}

func discoverJWKSURL(ctx context.Context, issuer string) (string, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return "", fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	var claims struct {
		JWKSURL string `json:"jwks_uri"`
	}

	if err := provider.Claims(&claims); err != nil {
		return "", fmt.Errorf("failed to read OIDC provider metadata: %v", err)
	}

	if claims.JWKSURL == "" {
		return "", fmt.Errorf("issuer %s does not publish a jwks_uri", issuer)
	}

	return claims.JWKSURL, nil
}
