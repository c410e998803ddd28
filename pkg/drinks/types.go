// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drinks

import (
	"bytes"
	"encoding/json"

	"github.com/canonical/coffee-shop-service/internal/types"
)

// Recipe accepts either a list of ingredients or a single ingredient object.
type Recipe []types.Ingredient

func (r *Recipe) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if bytes.HasPrefix(trimmed, []byte("{")) {
		var single types.Ingredient
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*r = Recipe{single}
		return nil
	}

	var list []types.Ingredient
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*r = list

	return nil
}

type CreateDrinkRequest struct {
	Title  string `json:"title" validate:"required,max=80"`
	Recipe Recipe `json:"recipe" validate:"required,min=1,dive"`
}

type UpdateDrinkRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=1,max=80"`
	Recipe Recipe  `json:"recipe" validate:"omitempty,min=1,dive"`
}

type DrinksShortResponse struct {
	Success bool               `json:"success"`
	Drinks  []types.DrinkShort `json:"drinks"`
}

type DrinksLongResponse struct {
	Success bool              `json:"success"`
	Drinks  []types.DrinkLong `json:"drinks"`
}

type DeleteDrinkResponse struct {
	Success bool   `json:"success"`
	Delete  string `json:"delete"`
}
