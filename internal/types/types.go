// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Ingredient struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
	Parts int    `json:"parts" validate:"gt=0"`
}

type Drink struct {
	ID        string       `db:"id"`
	Title     string       `db:"title"`
	Recipe    []Ingredient `db:"recipe"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// ShortIngredient hides the ingredient name from the public menu
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

type DrinkShort struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

type DrinkLong struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Recipe []Ingredient `json:"recipe"`
}

// Short is the public menu representation.
func (d *Drink) Short() DrinkShort {
	recipe := make([]ShortIngredient, 0, len(d.Recipe))
	for _, i := range d.Recipe {
		recipe = append(recipe, ShortIngredient{Color: i.Color, Parts: i.Parts})
	}

	return DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// Long is the detail representation, it includes ingredient names.
func (d *Drink) Long() DrinkLong {
	recipe := make([]Ingredient, len(d.Recipe))
	copy(recipe, d.Recipe)

	return DrinkLong{ID: d.ID, Title: d.Title, Recipe: recipe}
}
