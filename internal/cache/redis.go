// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

const keyPrefix = "jwks:"

var _ authentication.KeySetStoreInterface = (*KeySetStore)(nil)

type storedKeySet struct {
	FetchedAt time.Time       `json:"fetched_at"`
	JWKS      json.RawMessage `json:"jwks"`
}

// KeySetStore keeps JWKS documents in redis so replicas share one key set per domain.
type KeySetStore struct {
	client redis.Cmdable

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *KeySetStore) Get(ctx context.Context, domain string) (*authentication.SigningKeySet, error) {
	ctx, span := s.tracer.Start(ctx, "cache.KeySetStore.Get")
	defer span.End()

	val, err := s.client.Get(ctx, keyPrefix+domain).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get key set from redis: %w", err)
	}

	return decodeKeySet(val)
}

func (s *KeySetStore) Set(ctx context.Context, domain string, keySet *authentication.SigningKeySet, ttl time.Duration) error {
	ctx, span := s.tracer.Start(ctx, "cache.KeySetStore.Set")
	defer span.End()

	data, err := encodeKeySet(keySet)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, keyPrefix+domain, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key set in redis: %w", err)
	}

	s.logger.Debugf("stored %d signing keys for %s", keySet.Len(), domain)

	return nil
}

func encodeKeySet(keySet *authentication.SigningKeySet) ([]byte, error) {
	if keySet == nil {
		return nil, fmt.Errorf("refusing to store an empty key set")
	}

	jwks, err := json.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key set: %w", err)
	}

	data, err := json.Marshal(storedKeySet{FetchedAt: keySet.FetchedAt, JWKS: jwks})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cached key set: %w", err)
	}

	return data, nil
}

func decodeKeySet(data []byte) (*authentication.SigningKeySet, error) {
	var stored storedKeySet
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached key set: %w", err)
	}

	keySet, err := authentication.ParseKeySet(stored.JWKS)
	if err != nil {
		return nil, err
	}

	keySet.FetchedAt = stored.FetchedAt

	return keySet, nil
}

// NewRedisClient parses a redis:// URL and checks the server is reachable.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func NewKeySetStore(client redis.Cmdable, tracer tracing.TracingInterface, logger logging.LoggerInterface) *KeySetStore {
	return &KeySetStore{
		client: client,
		tracer: tracer,
		logger: logger,
	}
}
