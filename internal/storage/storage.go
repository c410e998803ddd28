// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/coffee-shop-service/internal/db"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/internal/types"
)

const drinksTable = "drinks"

var (
	_ StorageInterface = (*Storage)(nil)

	drinkColumns = []string{"id", "title", "recipe", "created_at", "updated_at"}
)

type Storage struct {
	db db.DBClientInterface

	logger logging.LoggerInterface
	tracer tracing.TracingInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer

	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrink(row rowScanner) (*types.Drink, error) {
	var (
		d      types.Drink
		recipe []byte
	)

	if err := row.Scan(&d.ID, &d.Title, &recipe, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(recipe, &d.Recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe of drink %s: %w", d.ID, err)
	}

	return &d, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func (s *Storage) ListDrinks(ctx context.Context) ([]*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDrinks")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(drinkColumns...).
		From(drinksTable).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	defer rows.Close()

	drinks := make([]*types.Drink, 0)
	for rows.Next() {
		d, err := scanDrink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drink: %w", err)
		}
		drinks = append(drinks, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drink rows: %w", err)
	}

	return drinks, nil
}

func (s *Storage) GetDrink(ctx context.Context, id string) (*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDrink")
	defer span.End()

	d, err := scanDrink(
		s.db.Statement(ctx).
			Select(drinkColumns...).
			From(drinksTable).
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	return d, nil
}

func (s *Storage) CreateDrink(ctx context.Context, d *types.Drink) (*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDrink")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate drink ID: %w", err)
	}

	recipe, err := json.Marshal(d.Recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}

	created, err := scanDrink(
		s.db.Statement(ctx).
			Insert(drinksTable).
			Columns("id", "title", "recipe").
			Values(id.String(), d.Title, string(recipe)).
			Suffix("RETURNING id, title, recipe, created_at, updated_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "drink title already exists")
		}
		return nil, fmt.Errorf("failed to insert drink: %w", err)
	}

	return created, nil
}

func (s *Storage) UpdateDrink(ctx context.Context, d *types.Drink) (*types.Drink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDrink")
	defer span.End()

	recipe, err := json.Marshal(d.Recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}

	updated, err := scanDrink(
		s.db.Statement(ctx).
			Update(drinksTable).
			SetMap(map[string]any{
				"title":      d.Title,
				"recipe":     string(recipe),
				"updated_at": sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": d.ID}).
			Suffix("RETURNING id, title, recipe, created_at, updated_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "drink title already exists")
		}
		return nil, fmt.Errorf("failed to update drink: %w", err)
	}

	return updated, nil
}

func (s *Storage) DeleteDrink(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDrink")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete(drinksTable).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
