// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

const permissionsClaim = "permissions"

// Claims is the verified token payload, exactly as decoded.
type Claims map[string]any

// Subject returns the sub claim or an empty string.
func (c Claims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

// Permissions returns the permissions claim, false if it is absent or not an array.
// Non string entries are ignored.
func (c Claims) Permissions() ([]string, bool) {
	raw, ok := c[permissionsClaim]
	if !ok {
		return nil, false
	}

	var permissions []string
	switch v := raw.(type) {
	case []any:
		permissions = make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok {
				permissions = append(permissions, s)
			}
		}
	case []string:
		permissions = v
	default:
		return nil, false
	}

	return permissions, true
}
