// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

func testKeySet(t *testing.T, kids ...string) *authentication.SigningKeySet {
	t.Helper()

	ks, _ := testSigningKeys(t, kids...)

	return ks
}

func testSigningKeys(t *testing.T, kids ...string) (*authentication.SigningKeySet, map[string]*rsa.PrivateKey) {
	t.Helper()

	privs := make(map[string]*rsa.PrivateKey, len(kids))
	keys := make([]json.RawMessage, 0, len(kids))
	for _, kid := range kids {
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("failed to generate key: %v", err)
		}
		privs[kid] = priv

		raw, err := jose.JSONWebKey{Key: &priv.PublicKey, KeyID: kid, Algorithm: "RS256", Use: "sig"}.MarshalJSON()
		if err != nil {
			t.Fatalf("failed to marshal key: %v", err)
		}
		keys = append(keys, raw)
	}

	doc, _ := json.Marshal(map[string]any{"keys": keys})

	ks, err := authentication.ParseKeySet(doc)
	if err != nil {
		t.Fatalf("failed to parse key set: %v", err)
	}

	return ks, privs
}

func TestKeySetEncoding(t *testing.T) {
	ks := testKeySet(t, "K1", "K2")
	ks.FetchedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	data, err := encodeKeySet(ks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := decodeKeySet(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(got.KeyIDs(), []string{"K1", "K2"}) {
		t.Errorf("unexpected key ids %v", got.KeyIDs())
	}

	if !got.FetchedAt.Equal(ks.FetchedAt) {
		t.Errorf("expected fetch time %v, got %v", ks.FetchedAt, got.FetchedAt)
	}

	k1, _ := ks.Lookup("K1")
	decoded, _ := got.Lookup("K1")
	if !decoded.PublicKey().(*rsa.PublicKey).Equal(k1.PublicKey()) {
		t.Errorf("decoded K1 does not hold the original key")
	}
}

func TestKeySetEncodingErrors(t *testing.T) {
	if _, err := encodeKeySet(nil); err == nil {
		t.Errorf("expected error encoding a nil key set")
	}

	for _, data := range []string{"garbage", `{"fetched_at":"2026-03-01T09:00:00Z","jwks":{}}`} {
		if _, err := decodeKeySet([]byte(data)); err == nil {
			t.Errorf("expected error decoding %q", data)
		}
	}
}

func TestKeySetStoreConnectionError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	store := NewKeySetStore(client, tracing.NewNoopTracer(), logging.NewNoopLogger())

	ks, err := store.Get(context.Background(), "coffee.eu.auth0.com")
	if err == nil || ks != nil {
		t.Errorf("expected a connection error, got %v %v", ks, err)
	}

	if err := store.Set(context.Background(), "coffee.eu.auth0.com", testKeySet(t, "K1"), time.Minute); err == nil {
		t.Errorf("expected a connection error")
	}
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not-a-valid-url"); err == nil {
		t.Errorf("expected error")
	}
}
