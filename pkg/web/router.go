// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/coffee-shop-service/internal/http/types"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/pkg/drinks"
	"github.com/canonical/coffee-shop-service/pkg/metrics"
	"github.com/canonical/coffee-shop-service/pkg/status"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
}

func NewRouter(
	config RouterConfig,
	drinksService drinks.ServiceInterface,
	guard drinks.GuardInterface,
	database status.PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(config.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	router.NotFound(types.NotFoundHandler)
	router.MethodNotAllowed(types.MethodNotAllowedHandler)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(database, tracer, logger).RegisterEndpoints(router)
	drinks.NewAPI(drinksService, guard, tracer, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor).OpenTelemetry(router)
}
