// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drinks

import "errors"

var (
	ErrDrinkNotFound  = errors.New("drink not found")
	ErrDuplicateTitle = errors.New("a drink with this title already exists")
)
