// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/coffee-shop-service/internal/monitoring"
)

// Middleware wraps the whole router in an otel server handler named after the service
type Middleware struct {
	monitor monitoring.MonitorInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(handler, mdw.monitor.GetService())
}

func NewMiddleware(monitor monitoring.MonitorInterface) *Middleware {
	mdw := new(Middleware)

	mdw.monitor = monitor

	return mdw
}
