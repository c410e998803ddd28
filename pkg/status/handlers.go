// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/coffee-shop-service/internal/http/types"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/internal/version"
)

const okValue = "ok"

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo"`
}

type API struct {
	database PingerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	_ = types.WriteJSON(w, http.StatusOK, Status{Status: okValue, BuildInfo: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if a.database != nil {
		if err := a.database.Ping(ctx); err != nil {
			a.logger.Errorf("database is not reachable: %v", err)
			_ = types.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}

	_ = types.WriteJSON(w, http.StatusOK, Status{Status: okValue, BuildInfo: version.Version})
}

func NewAPI(database PingerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.database = database

	a.tracer = tracer
	a.logger = logger

	return a
}
