// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drinks

import (
	"context"
	"net/http"

	"github.com/canonical/coffee-shop-service/internal/types"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

// StorageInterface is the subset of internal/storage used by the drinks service.
type StorageInterface interface {
	ListDrinks(ctx context.Context) ([]*types.Drink, error)
	GetDrink(ctx context.Context, id string) (*types.Drink, error)
	CreateDrink(ctx context.Context, d *types.Drink) (*types.Drink, error)
	UpdateDrink(ctx context.Context, d *types.Drink) (*types.Drink, error)
	DeleteDrink(ctx context.Context, id string) error
}

// TransactorInterface runs fn inside a database transaction.
type TransactorInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type ServiceInterface interface {
	ListDrinks(ctx context.Context) ([]*types.Drink, error)
	CreateDrink(ctx context.Context, title string, recipe []types.Ingredient) (*types.Drink, error)
	// UpdateDrink changes only the non nil fields
	UpdateDrink(ctx context.Context, id string, title *string, recipe []types.Ingredient) (*types.Drink, error)
	DeleteDrink(ctx context.Context, id string) error
}

// GuardInterface wraps a handler with a permission check.
type GuardInterface interface {
	RequirePermission(permission string, next authentication.ClaimsHandlerFunc) http.Handler
}
