// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
)

// ExtractToken returns the token of the Authorization header. Only an absent header
// is missing; any present value, empty included, must be exactly "Bearer <token>".
func ExtractToken(headers http.Header) (string, error) {
	values := headers.Values(authorizationHeader)
	if len(values) == 0 {
		return "", newAuthError(KindMissingHeader, nil)
	}

	header := values[0]

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return "", newAuthError(KindMalformedHeader, nil)
	}

	return parts[1], nil
}
