// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drinks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/coffee-shop-service/internal/http/types"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	dtypes "github.com/canonical/coffee-shop-service/internal/types"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

type API struct {
	service   ServiceInterface
	guard     GuardInterface
	validator *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/drinks", a.listDrinks)
	mux.Method(http.MethodGet, "/drinks-detail", a.guard.RequirePermission(PermissionGetDrinksDetail, a.listDrinksDetail))
	mux.Method(http.MethodPost, "/drinks", a.guard.RequirePermission(PermissionPostDrinks, a.createDrink))
	mux.Method(http.MethodPatch, "/drinks/{id}", a.guard.RequirePermission(PermissionPatchDrinks, a.updateDrink))
	mux.Method(http.MethodDelete, "/drinks/{id}", a.guard.RequirePermission(PermissionDeleteDrinks, a.deleteDrink))
}

func (a *API) listDrinks(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "drinks.API.listDrinks")
	defer span.End()

	drinks, err := a.service.ListDrinks(ctx)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	resp := DrinksShortResponse{Success: true, Drinks: make([]dtypes.DrinkShort, 0, len(drinks))}
	for _, d := range drinks {
		resp.Drinks = append(resp.Drinks, d.Short())
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) listDrinksDetail(_ authentication.Claims, w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "drinks.API.listDrinksDetail")
	defer span.End()

	drinks, err := a.service.ListDrinks(ctx)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, longResponse(drinks...))
}

func (a *API) createDrink(claims authentication.Claims, w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "drinks.API.createDrink")
	defer span.End()

	req := new(CreateDrinkRequest)
	if !a.decode(w, r, req) {
		return
	}

	d, err := a.service.CreateDrink(ctx, req.Title, req.Recipe)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.logger.Debugf("drink %s created by %s", d.ID, claims.Subject())
	a.writeJSON(w, http.StatusOK, longResponse(d))
}

func (a *API) updateDrink(claims authentication.Claims, w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "drinks.API.updateDrink")
	defer span.End()

	req := new(UpdateDrinkRequest)
	if !a.decode(w, r, req) {
		return
	}

	if req.Title == nil && req.Recipe == nil {
		a.writeError(w, http.StatusUnprocessableEntity, "unprocessable")
		return
	}

	var recipe []dtypes.Ingredient
	if req.Recipe != nil {
		recipe = req.Recipe
	}

	d, err := a.service.UpdateDrink(ctx, chi.URLParam(r, "id"), req.Title, recipe)
	if err != nil {
		a.errorResponse(w, err)
		return
	}

	a.logger.Debugf("drink %s updated by %s", d.ID, claims.Subject())
	a.writeJSON(w, http.StatusOK, longResponse(d))
}

func (a *API) deleteDrink(claims authentication.Claims, w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "drinks.API.deleteDrink")
	defer span.End()

	id := chi.URLParam(r, "id")

	if err := a.service.DeleteDrink(ctx, id); err != nil {
		a.errorResponse(w, err)
		return
	}

	a.logger.Debugf("drink %s deleted by %s", id, claims.Subject())
	a.writeJSON(w, http.StatusOK, DeleteDrinkResponse{Success: true, Delete: id})
}

// decode writes the error response itself and reports whether the handler can go on
func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.logger.Debugf("invalid drink payload: %v", err)
		a.writeError(w, http.StatusBadRequest, "bad request")
		return false
	}

	if err := a.validator.Struct(v); err != nil {
		a.logger.Debugf("drink payload failed validation: %v", err)
		a.writeError(w, http.StatusUnprocessableEntity, "unprocessable")
		return false
	}

	return true
}

func (a *API) errorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDrinkNotFound):
		a.writeError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, ErrDuplicateTitle):
		a.writeError(w, http.StatusUnprocessableEntity, "unprocessable")
	default:
		a.logger.Errorf("drinks request failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := types.WriteJSON(w, status, v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func longResponse(drinks ...*dtypes.Drink) DrinksLongResponse {
	resp := DrinksLongResponse{Success: true, Drinks: make([]dtypes.DrinkLong, 0, len(drinks))}
	for _, d := range drinks {
		resp.Drinks = append(resp.Drinks, d.Long())
	}

	return resp
}

func NewAPI(service ServiceInterface, guard GuardInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		guard:     guard,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		logger:    logger,
	}
}
