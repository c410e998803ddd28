// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

const (
	testDomain   = "coffee.eu.auth0.com"
	testAudience = "dev"
	testIssuer   = "https://coffee.eu.auth0.com/"
)

type testKey struct {
	kid  string
	priv *rsa.PrivateKey
}

func newTestKey(t *testing.T, kid string) testKey {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	return testKey{kid: kid, priv: priv}
}

func (k testKey) jwk(t *testing.T) json.RawMessage {
	t.Helper()

	raw, err := jose.JSONWebKey{
		Key:       &k.priv.PublicKey,
		KeyID:     k.kid,
		Algorithm: "RS256",
		Use:       "sig",
	}.MarshalJSON()
	if err != nil {
		t.Fatalf("failed to marshal JWK: %v", err)
	}

	return raw
}

// sign mints an RS256 token carrying k's kid, an empty kid omits the header field
func (k testKey) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if k.kid != "" {
		token.Header["kid"] = k.kid
	}

	signed, err := token.SignedString(k.priv)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return signed
}

func jwksDocument(t *testing.T, keys ...testKey) []byte {
	t.Helper()

	doc := struct {
		Keys []json.RawMessage `json:"keys"`
	}{Keys: make([]json.RawMessage, 0, len(keys))}

	for _, k := range keys {
		doc.Keys = append(doc.Keys, k.jwk(t))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal JWKS: %v", err)
	}

	return data
}

func keySetOf(t *testing.T, keys ...testKey) *SigningKeySet {
	t.Helper()

	ks, err := ParseKeySet(jwksDocument(t, keys...))
	if err != nil {
		t.Fatalf("failed to parse key set: %v", err)
	}

	return ks
}

func validClaims(permissions ...string) jwt.MapClaims {
	perms := make([]any, 0, len(permissions))
	for _, p := range permissions {
		perms = append(perms, p)
	}

	return jwt.MapClaims{
		"iss":         testIssuer,
		"sub":         "auth0|barista",
		"aud":         []string{testAudience},
		"iat":         time.Now().Add(-time.Minute).Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
		"permissions": perms,
	}
}

func withClaim(claims jwt.MapClaims, name string, value any) jwt.MapClaims {
	c := jwt.MapClaims{}
	for k, v := range claims {
		c[k] = v
	}

	if value == nil {
		delete(c, name)
	} else {
		c[name] = value
	}

	return c
}

func testConfig() Config {
	return Config{Domain: testDomain, Audience: testAudience}
}

// authorization builds request headers carrying the given Authorization value.
func authorization(value string) http.Header {
	return http.Header{"Authorization": {value}}
}

func noopDeps() (tracing.TracingInterface, monitoring.MonitorInterface, logging.LoggerInterface) {
	return tracing.NewNoopTracer(), monitoring.NewNoopMonitor("coffee-shop-service"), logging.NewNoopLogger()
}
