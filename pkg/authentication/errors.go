// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindMissingHeader          ErrorKind = "missing_header"
	KindMalformedHeader        ErrorKind = "malformed_header"
	KindMissingKeyID           ErrorKind = "missing_key_id"
	KindUnknownSigningKey      ErrorKind = "unknown_signing_key"
	KindExpiredToken           ErrorKind = "expired_token"
	KindInvalidClaims          ErrorKind = "invalid_claims"
	KindMalformedToken         ErrorKind = "malformed_token"
	KindKeySetUnavailable      ErrorKind = "key_set_unavailable"
	KindNoPermissionsClaim     ErrorKind = "no_permissions_claim"
	KindInsufficientPermission ErrorKind = "insufficient_permission"
)

type outcome struct {
	status  int
	message string
}

// outcomes is the fixed kind -> response table exposed to API clients
var outcomes = map[ErrorKind]outcome{
	KindMissingHeader:          {http.StatusUnauthorized, "Missing auth header"},
	KindMalformedHeader:        {http.StatusUnauthorized, "Malformed auth header"},
	KindMissingKeyID:           {http.StatusUnauthorized, "Invalid auth header"},
	KindUnknownSigningKey:      {http.StatusUnauthorized, "Invalid auth header. Unable to find the appropriate key."},
	KindExpiredToken:           {http.StatusUnauthorized, "Expired auth token"},
	KindInvalidClaims:          {http.StatusBadRequest, "Invalid auth claim. Check the audience and issuer."},
	KindMalformedToken:         {http.StatusBadRequest, "Invalid auth header. Unable to parse auth token."},
	KindKeySetUnavailable:      {http.StatusServiceUnavailable, "Unable to fetch signing keys."},
	KindNoPermissionsClaim:     {http.StatusUnauthorized, "Invalid auth token. Unable to locate permission scopes."},
	KindInsufficientPermission: {http.StatusUnauthorized, "Invalid permission scope. User has insufficient privileges."},
}

// Sentinel errors, usable as errors.Is targets.
var (
	ErrMissingHeader          = &AuthError{Kind: KindMissingHeader}
	ErrMalformedHeader        = &AuthError{Kind: KindMalformedHeader}
	ErrMissingKeyID           = &AuthError{Kind: KindMissingKeyID}
	ErrUnknownSigningKey      = &AuthError{Kind: KindUnknownSigningKey}
	ErrExpiredToken           = &AuthError{Kind: KindExpiredToken}
	ErrInvalidClaims          = &AuthError{Kind: KindInvalidClaims}
	ErrMalformedToken         = &AuthError{Kind: KindMalformedToken}
	ErrKeySetUnavailable      = &AuthError{Kind: KindKeySetUnavailable}
	ErrNoPermissionsClaim     = &AuthError{Kind: KindNoPermissionsClaim}
	ErrInsufficientPermission = &AuthError{Kind: KindInsufficientPermission}
)

// AuthError is a classified authorization failure.
// The wrapped cause is for logs only, Message is what clients see.
type AuthError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int

	cause   error
	subject string
}

// Subject is the sub claim of the rejected token, when the token was verified.
func (e *AuthError) Subject() string {
	return e.subject
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return string(e.Kind)
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newAuthError(kind ErrorKind, cause error) *AuthError {
	o, ok := outcomes[kind]
	if !ok {
		kind = KindMalformedToken
		o = outcomes[kind]
	}

	return &AuthError{
		Kind:       kind,
		Message:    o.message,
		StatusCode: o.status,
		cause:      cause,
	}
}

// AsAuthError classifies any error, unknown errors become KindMalformedToken
func AsAuthError(err error) *AuthError {
	if err == nil {
		return nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		if authErr.StatusCode != 0 {
			return authErr
		}
		return newAuthError(authErr.Kind, nil)
	}

	return newAuthError(KindMalformedToken, err)
}
