// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/coffee-shop-service/internal/types"
)

type StorageInterface interface {
	ListDrinks(ctx context.Context) ([]*types.Drink, error)
	GetDrink(ctx context.Context, id string) (*types.Drink, error)
	CreateDrink(ctx context.Context, d *types.Drink) (*types.Drink, error)
	UpdateDrink(ctx context.Context, d *types.Drink) (*types.Drink, error)
	DeleteDrink(ctx context.Context, id string) error
}
