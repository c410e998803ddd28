// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drinks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/storage"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TransactorInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *Service) ListDrinks(ctx context.Context) ([]*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "drinks.Service.ListDrinks")
	defer span.End()

	return s.storage.ListDrinks(ctx)
}

func (s *Service) CreateDrink(ctx context.Context, title string, recipe []types.Ingredient) (*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "drinks.Service.CreateDrink")
	defer span.End()

	d, err := s.storage.CreateDrink(ctx, &types.Drink{Title: title, Recipe: recipe})
	if err != nil {
		return nil, s.storageError(err)
	}

	s.logger.Infof("created drink %s", d.ID)

	return d, nil
}

func (s *Service) UpdateDrink(ctx context.Context, id string, title *string, recipe []types.Ingredient) (*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "drinks.Service.UpdateDrink")
	defer span.End()

	if !validID(id) {
		return nil, ErrDrinkNotFound
	}

	var updated *types.Drink
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		d, err := s.storage.GetDrink(ctx, id)
		if err != nil {
			return err
		}

		if title != nil {
			d.Title = *title
		}

		if recipe != nil {
			d.Recipe = recipe
		}

		updated, err = s.storage.UpdateDrink(ctx, d)
		return err
	})
	if err != nil {
		return nil, s.storageError(err)
	}

	s.logger.Infof("updated drink %s", id)

	return updated, nil
}

func (s *Service) DeleteDrink(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "drinks.Service.DeleteDrink")
	defer span.End()

	if !validID(id) {
		return ErrDrinkNotFound
	}

	if err := s.storage.DeleteDrink(ctx, id); err != nil {
		return s.storageError(err)
	}

	s.logger.Infof("deleted drink %s", id)

	return nil
}

func (s *Service) storageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrDrinkNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return ErrDuplicateTitle
	default:
		return fmt.Errorf("drinks storage failure: %w", err)
	}
}

// validID rejects ids that cannot match a stored drink
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func NewService(
	storage StorageInterface,
	tx TransactorInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		tracer:  tracer,
		logger:  logger,
	}
}
