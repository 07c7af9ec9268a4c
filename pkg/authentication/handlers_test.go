// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

func TestAPI_HandleLogin(t *testing.T) {
	result := &LoginResult{
		AccessToken: "signed.jwt.value",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		Principal:   &types.Principal{ID: "u1", Username: "admin@acme.test", Role: types.RoleAdmin, TenantID: "acme", Plan: types.PlanFree},
	}

	tests := []struct {
		name           string
		contentType    string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "json body",
			contentType: "application/json",
			body:        `{"username":"admin@acme.test","password":"password"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), "admin@acme.test", "password").Return(result, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "password grant form",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"grant_type": {"password"}, "username": {"admin@acme.test"}, "password": {"password"}}.Encode(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), "admin@acme.test", "password").Return(result, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unsupported grant",
			contentType:    "application/x-www-form-urlencoded",
			body:           url.Values{"grant_type": {"client_credentials"}}.Encode(),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			contentType:    "application/json",
			body:           `{"username":"admin@acme.test"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			contentType:    "application/json",
			body:           `{"username":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "bad credentials",
			contentType: "application/json",
			body:        `{"username":"admin@acme.test","password":"nope"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), "admin@acme.test", "nope").Return(nil, authorization.NewError(authorization.ErrUnauthenticated, "invalid credentials"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "locked out",
			contentType: "application/json",
			body:        `{"username":"admin@acme.test","password":"password"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), "admin@acme.test", "password").Return(nil, authorization.NewError(authorization.ErrTooManyAttempts, "too many failed login attempts, try again later"))
			},
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			router := chi.NewMux()
			NewAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logging.NewNoopLogger()).RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			if got := w.Header().Get("Cache-Control"); got != "no-store" {
				t.Errorf("expected Cache-Control no-store, got %q", got)
			}

			resp := new(LoginResponse)
			if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.AccessToken != result.AccessToken || resp.TokenType != "bearer" || resp.ExpiresIn != 3600 {
				t.Errorf("unexpected response %+v", resp)
			}

			if resp.User.TenantID != "acme" || resp.User.Role != types.RoleAdmin {
				t.Errorf("unexpected user %+v", resp.User)
			}
		})
	}
}
