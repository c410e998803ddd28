// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drinks

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	httptypes "github.com/canonical/coffee-shop-service/internal/http/types"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/internal/types"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

const testBearer = "Bearer header.payload.signature"

var bearerHeader = http.Header{"Authorization": {testBearer}}

var testRecipe = []types.Ingredient{
	{Name: "espresso", Color: "brown", Parts: 1},
	{Name: "milk foam", Color: "white", Parts: 1},
}

func grant(permissions ...string) authentication.Claims {
	perms := make([]any, 0, len(permissions))
	for _, p := range permissions {
		perms = append(perms, p)
	}
	return authentication.Claims{"sub": "auth0|barista", "permissions": perms}
}

func newTestRouter(ctrl *gomock.Controller) (*chi.Mux, *MockServiceInterface, *authentication.MockAuthorizerInterface) {
	tracer := tracing.NewNoopTracer()
	logger := logging.NewNoopLogger()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthorizer := authentication.NewMockAuthorizerInterface(ctrl)
	guard := authentication.NewMiddleware(mockAuthorizer, tracer, logger)

	mux := chi.NewMux()
	NewAPI(mockService, guard, tracer, logger).RegisterEndpoints(mux)

	return mux, mockService, mockAuthorizer
}

func serve(mux http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if authorized {
		req.Header.Set("Authorization", testBearer)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *httptypes.ErrorResponse {
	t.Helper()

	body := new(httptypes.ErrorResponse)
	if err := json.NewDecoder(w.Body).Decode(body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}

	return body
}

func TestAPI_ListDrinksIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, mockService, _ := newTestRouter(ctrl)
	mockService.EXPECT().ListDrinks(gomock.Any()).Return([]*types.Drink{{ID: testDrinkID, Title: "cappuccino", Recipe: testRecipe}}, nil)

	w := serve(mux, http.MethodGet, "/drinks", "", false)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if strings.Contains(w.Body.String(), "espresso") {
		t.Errorf("public menu must not expose ingredient names: %s", w.Body.String())
	}

	resp := new(DrinksShortResponse)
	if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if !resp.Success || len(resp.Drinks) != 1 || resp.Drinks[0].Recipe[1].Color != "white" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAPI_ListDrinksDetail(t *testing.T) {
	tests := []struct {
		name       string
		authErr    error
		wantStatus int
	}{
		{name: "granted", wantStatus: http.StatusOK},
		{name: "missing permission", authErr: authentication.ErrInsufficientPermission, wantStatus: http.StatusUnauthorized},
		{name: "expired token", authErr: authentication.ErrExpiredToken, wantStatus: http.StatusUnauthorized},
		{name: "keys unavailable", authErr: authentication.ErrKeySetUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, mockService, mockAuthorizer := newTestRouter(ctrl)

			if test.authErr != nil {
				mockAuthorizer.EXPECT().Authorize(gomock.Any(), bearerHeader, PermissionGetDrinksDetail).Return(nil, test.authErr)
			} else {
				mockAuthorizer.EXPECT().Authorize(gomock.Any(), bearerHeader, PermissionGetDrinksDetail).Return(grant(PermissionGetDrinksDetail), nil)
				mockService.EXPECT().ListDrinks(gomock.Any()).Return([]*types.Drink{{ID: testDrinkID, Title: "cappuccino", Recipe: testRecipe}}, nil)
			}

			w := serve(mux, http.MethodGet, "/drinks-detail", "", true)

			if w.Code != test.wantStatus {
				t.Fatalf("expected %d, got %d", test.wantStatus, w.Code)
			}

			if test.authErr != nil {
				if body := decodeError(t, w); body.Success || body.Error != test.wantStatus {
					t.Errorf("unexpected error body %+v", body)
				}
				return
			}

			resp := new(DrinksLongResponse)
			if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if resp.Drinks[0].Recipe[0].Name != "espresso" {
				t.Errorf("expected the long form, got %+v", resp)
			}
		})
	}
}

func TestAPI_CreateDrink(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "recipe list",
			body: `{"title":"cappuccino","recipe":[{"name":"espresso","color":"brown","parts":1},{"name":"milk foam","color":"white","parts":1}]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateDrink(gomock.Any(), "cappuccino", testRecipe).
					Return(&types.Drink{ID: testDrinkID, Title: "cappuccino", Recipe: testRecipe}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "single ingredient object",
			body: `{"title":"water","recipe":{"name":"water","color":"blue","parts":1}}`,
			setupMocks: func(m *MockServiceInterface) {
				recipe := []types.Ingredient{{Name: "water", Color: "blue", Parts: 1}}
				m.EXPECT().CreateDrink(gomock.Any(), "water", recipe).
					Return(&types.Drink{ID: testDrinkID, Title: "water", Recipe: recipe}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing title",
			body:       `{"recipe":[{"name":"water","color":"blue","parts":1}]}`,
			setupMocks: func(m *MockServiceInterface) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "unprocessable",
		},
		{
			name:       "zero parts",
			body:       `{"title":"water","recipe":[{"name":"water","color":"blue","parts":0}]}`,
			setupMocks: func(m *MockServiceInterface) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "unprocessable",
		},
		{
			name:       "empty recipe",
			body:       `{"title":"water","recipe":[]}`,
			setupMocks: func(m *MockServiceInterface) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "unprocessable",
		},
		{
			name:       "invalid json",
			body:       `{"title":`,
			setupMocks: func(m *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "bad request",
		},
		{
			name: "duplicate title",
			body: `{"title":"cappuccino","recipe":{"name":"espresso","color":"brown","parts":1}}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateDrink(gomock.Any(), "cappuccino", gomock.Any()).Return(nil, ErrDuplicateTitle)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "unprocessable",
		},
		{
			name: "storage failure",
			body: `{"title":"cappuccino","recipe":{"name":"espresso","color":"brown","parts":1}}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateDrink(gomock.Any(), "cappuccino", gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, mockService, mockAuthorizer := newTestRouter(ctrl)
			mockAuthorizer.EXPECT().Authorize(gomock.Any(), bearerHeader, PermissionPostDrinks).Return(grant(PermissionPostDrinks), nil)
			test.setupMocks(mockService)

			w := serve(mux, http.MethodPost, "/drinks", test.body, true)

			if w.Code != test.wantStatus {
				t.Fatalf("expected %d, got %d: %s", test.wantStatus, w.Code, w.Body.String())
			}

			if test.wantMsg != "" {
				if body := decodeError(t, w); body.Message != test.wantMsg {
					t.Errorf("expected message %q, got %q", test.wantMsg, body.Message)
				}
				return
			}

			resp := new(DrinksLongResponse)
			if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if !resp.Success || len(resp.Drinks) != 1 || resp.Drinks[0].ID != testDrinkID {
				t.Errorf("unexpected response %+v", resp)
			}
		})
	}
}

func TestAPI_CreateDrinkWithoutPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no CreateDrink expectation, the service must not be reached
	mux, _, mockAuthorizer := newTestRouter(ctrl)
	mockAuthorizer.EXPECT().Authorize(gomock.Any(), http.Header{}, PermissionPostDrinks).Return(nil, authentication.ErrMissingHeader)

	w := serve(mux, http.MethodPost, "/drinks", `{"title":"latte","recipe":[]}`, false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	if body := decodeError(t, w); body.Message != "Missing auth header" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestAPI_UpdateDrink(t *testing.T) {
	title := "flat white"

	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "title",
			body: `{"title":"flat white"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateDrink(gomock.Any(), testDrinkID, &title, nil).
					Return(&types.Drink{ID: testDrinkID, Title: title, Recipe: testRecipe}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "recipe",
			body: `{"recipe":[{"name":"espresso","color":"brown","parts":1},{"name":"milk foam","color":"white","parts":1}]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateDrink(gomock.Any(), testDrinkID, nil, testRecipe).
					Return(&types.Drink{ID: testDrinkID, Title: "cappuccino", Recipe: testRecipe}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown drink",
			body: `{"title":"flat white"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateDrink(gomock.Any(), testDrinkID, gomock.Any(), gomock.Any()).Return(nil, ErrDrinkNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "nothing to update",
			body:       `{}`,
			setupMocks: func(m *MockServiceInterface) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "empty title",
			body:       `{"title":""}`,
			setupMocks: func(m *MockServiceInterface) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, mockService, mockAuthorizer := newTestRouter(ctrl)
			mockAuthorizer.EXPECT().Authorize(gomock.Any(), bearerHeader, PermissionPatchDrinks).Return(grant(PermissionPatchDrinks), nil)
			test.setupMocks(mockService)

			w := serve(mux, http.MethodPatch, "/drinks/"+testDrinkID, test.body, true)

			if w.Code != test.wantStatus {
				t.Fatalf("expected %d, got %d: %s", test.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_DeleteDrink(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "unknown drink", serviceErr: ErrDrinkNotFound, wantStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, mockService, mockAuthorizer := newTestRouter(ctrl)
			mockAuthorizer.EXPECT().Authorize(gomock.Any(), bearerHeader, PermissionDeleteDrinks).Return(grant(PermissionDeleteDrinks), nil)
			mockService.EXPECT().DeleteDrink(gomock.Any(), testDrinkID).Return(test.serviceErr)

			w := serve(mux, http.MethodDelete, "/drinks/"+testDrinkID, "", true)

			if w.Code != test.wantStatus {
				t.Fatalf("expected %d, got %d", test.wantStatus, w.Code)
			}

			if test.serviceErr != nil {
				if body := decodeError(t, w); body.Message != "resource not found" {
					t.Errorf("unexpected message %q", body.Message)
				}
				return
			}

			resp := new(DeleteDrinkResponse)
			if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if !resp.Success || resp.Delete != testDrinkID {
				t.Errorf("unexpected response %+v", resp)
			}
		})
	}
}

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestAPI_ErrorResponseEncodeFailureIsLogged(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: ErrDrinkNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			logger := &logging.Logger{SugaredLogger: zap.New(core).Sugar()}

			a := NewAPI(nil, nil, tracing.NewNoopTracer(), logger)
			w := brokenWriter{httptest.NewRecorder()}

			a.errorResponse(w, test.err)

			if w.Code != test.wantStatus {
				t.Errorf("expected %d, got %d", test.wantStatus, w.Code)
			}

			entries := logs.FilterMessageSnippet("failed to encode error response").All()
			if len(entries) != 1 {
				t.Fatalf("expected one logged encode failure, got %d", len(entries))
			}
		})
	}
}
