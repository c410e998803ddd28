// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"

	"github.com/canonical/coffee-shop-service/internal/http/types"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
)

// ClaimsHandlerFunc is a route handler that receives the verified claims first.
type ClaimsHandlerFunc func(claims Claims, w http.ResponseWriter, r *http.Request)

type Middleware struct {
	authorizer AuthorizerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RequirePermission guards next with the given permission. next is only called
// once the token is verified and grants the permission; the claims are also
// available through ClaimsFromContext.
func (m *Middleware) RequirePermission(permission string, next ClaimsHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequirePermission")
		defer span.End()

		claims, err := m.authorizer.Authorize(ctx, r.Header, permission)
		if err != nil {
			m.errorResponse(w, AsAuthError(err), permission)
			return
		}

		next(claims, w, r.WithContext(WithClaims(ctx, claims)))
	})
}

func (m *Middleware) errorResponse(w http.ResponseWriter, err *AuthError, permission string) {
	switch {
	case errors.Is(err, ErrInsufficientPermission), errors.Is(err, ErrNoPermissionsClaim):
		subject := err.Subject()
		if subject == "" {
			subject = "unknown"
		}
		m.logger.Security().AuthzFailure(subject, permission)
	case errors.Is(err, ErrKeySetUnavailable):
		m.logger.Errorf("unable to verify token: %v", err)
	default:
		m.logger.Security().AuthnFailure(string(err.Kind))
	}

	m.logger.Debugf("authorization failed: %v", err)

	if werr := types.WriteError(w, err.StatusCode, err.Message); werr != nil {
		m.logger.Errorf("failed to encode error response: %v", werr)
	}
}

func NewMiddleware(authorizer AuthorizerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		tracer:     tracer,
		logger:     logger,
	}
}
