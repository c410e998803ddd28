// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body of every failed API call
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// WriteJSON renders v with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// WriteError renders the standard error envelope, the message is returned to the
// caller verbatim so it must never carry internal details
func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(
		w,
		status,
		ErrorResponse{
			Success: false,
			Error:   status,
			Message: message,
		},
	)
}

// NotFoundHandler replaces the router default plain text 404
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	_ = WriteError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowedHandler replaces the router default plain text 405
func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	_ = WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}
