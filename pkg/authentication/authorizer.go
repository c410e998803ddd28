// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer verifies bearer tokens against the trust domain's key set and
// enforces a required permission. It holds no per request state.
type Authorizer struct {
	config  Config
	fetcher KeySetFetcherInterface
	parser  *jwt.Parser

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Authorize runs header extraction, key set fetch, verification and the permission
// check in order; the first failure is returned as an *AuthError.
func (a *Authorizer) Authorize(ctx context.Context, headers http.Header, permission string) (Claims, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authorizer.Authorize")
	defer span.End()

	token, err := ExtractToken(headers)
	if err != nil {
		return nil, err
	}

	keySet, err := a.FetchSigningKeys(ctx, a.config.Domain)
	if err != nil {
		return nil, err
	}

	claims, err := a.Verify(ctx, token, keySet)
	if errors.Is(err, ErrUnknownSigningKey) && keySet.FromCache {
		// a cached set may predate a key rotation, the answer of a fresh fetch is final
		if refresher, ok := a.fetcher.(RefreshingFetcherInterface); ok {
			claims, err = a.verifyWithFreshKeys(ctx, refresher, token)
		}
	}

	if err != nil {
		return nil, err
	}

	if err := a.CheckPermission(permission, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (a *Authorizer) verifyWithFreshKeys(ctx context.Context, refresher RefreshingFetcherInterface, token string) (Claims, error) {
	keySet, err := refresher.Refresh(ctx, a.config.Domain)
	if err != nil {
		return nil, newAuthError(KindKeySetUnavailable, err)
	}

	return a.Verify(ctx, token, keySet)
}

// FetchSigningKeys obtains the key set for the domain, any failure is KindKeySetUnavailable.
func (a *Authorizer) FetchSigningKeys(ctx context.Context, domain string) (*SigningKeySet, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authorizer.FetchSigningKeys")
	defer span.End()

	keySet, err := a.fetcher.FetchKeys(ctx, domain)
	if err != nil {
		return nil, newAuthError(KindKeySetUnavailable, err)
	}

	if keySet == nil {
		return nil, newAuthError(KindKeySetUnavailable, fmt.Errorf("no key set returned for %s", domain))
	}

	return keySet, nil
}

// Verify selects the signing key by kid, checks the signature and then the
// exp, aud and iss claims. Claims are only trusted after the signature check.
func (a *Authorizer) Verify(ctx context.Context, rawToken string, keySet *SigningKeySet) (Claims, error) {
	_, span := a.tracer.Start(ctx, "authentication.Authorizer.Verify")
	defer span.End()

	header, err := a.unverifiedHeader(rawToken)
	if err != nil {
		a.logger.Debugf("failed to decode token header: %v", err)
		return nil, newAuthError(KindMalformedToken, err)
	}

	kid, _ := header["kid"].(string)
	if kid == "" {
		return nil, newAuthError(KindMissingKeyID, nil)
	}

	key, ok := keySet.Lookup(kid)
	if !ok {
		return nil, newAuthError(KindUnknownSigningKey, fmt.Errorf("no signing key with kid %q", kid))
	}

	claims := jwt.MapClaims{}
	_, err = a.parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (any, error) {
		if key.Algorithm != "" && key.Algorithm != t.Method.Alg() {
			return nil, fmt.Errorf("key %s is not usable with %s", key.KeyID, t.Method.Alg())
		}
		return key.PublicKey(), nil
	})
	if err != nil {
		a.logger.Debugf("JWT verification failed: %v", err)
		return nil, classifyVerificationError(err)
	}

	return Claims(claims), nil
}

// CheckPermission is an exact, case sensitive membership test.
func (a *Authorizer) CheckPermission(permission string, claims Claims) error {
	permissions, ok := claims.Permissions()
	if !ok {
		err := newAuthError(KindNoPermissionsClaim, nil)
		err.subject = claims.Subject()
		return err
	}

	if !slices.Contains(permissions, permission) {
		err := newAuthError(KindInsufficientPermission, fmt.Errorf("permission %q not granted", permission))
		err.subject = claims.Subject()
		return err
	}

	return nil
}

// unverifiedHeader decodes only the first token segment.
func (a *Authorizer) unverifiedHeader(rawToken string) (map[string]any, error) {
	segments := strings.Split(rawToken, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("token has %d segments, expected 3", len(segments))
	}

	data, err := a.parser.DecodeSegment(segments[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode token header: %w", err)
	}

	header := make(map[string]any)
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token header: %w", err)
	}

	return header, nil
}

func classifyVerificationError(err error) *AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return newAuthError(KindExpiredToken, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return newAuthError(KindInvalidClaims, err)
	default:
		return newAuthError(KindMalformedToken, err)
	}
}

// NewAuthorizer validates and freezes the configuration.
func NewAuthorizer(
	config Config,
	fetcher KeySetFetcherInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) (*Authorizer, error) {
	config, err := config.validate()
	if err != nil {
		return nil, err
	}

	if fetcher == nil {
		return nil, fmt.Errorf("a key set fetcher is required for JWT authorization")
	}

	a := new(Authorizer)
	a.config = config
	a.fetcher = fetcher
	a.parser = jwt.NewParser(
		jwt.WithValidMethods(config.Algorithms),
		jwt.WithAudience(config.Audience),
		jwt.WithIssuer(config.Issuer()),
		jwt.WithExpirationRequired(),
	)

	a.tracer = tracer
	a.logger = logger

	return a, nil
}
