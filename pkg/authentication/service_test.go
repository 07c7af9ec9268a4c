// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

func TestService_Login(t *testing.T) {
	hasher := NewArgon2Hasher(fastArgon2Params)
	hash, err := hasher.Hash(context.Background(), "password")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	member := &types.User{ID: "u2", Username: "user@acme.test", PasswordHash: hash, Role: types.RoleMember, TenantID: "acme"}

	tests := []struct {
		name        string
		username    string
		password    string
		setupMocks  func(*MockStorageInterface, *MockLimiterInterface)
		expectedErr error
	}{
		{
			name:     "valid credentials",
			username: "user@acme.test",
			password: "password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface) {
				l.EXPECT().Allowed(gomock.Any(), "user@acme.test").Return(true, nil)
				s.EXPECT().GetUserByUsername(gomock.Any(), "user@acme.test").Return(member, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(&types.Tenant{ID: "acme", Plan: types.PlanFree}, nil)
				l.EXPECT().Reset(gomock.Any(), "user@acme.test").Return(nil)
			},
		},
		{
			name:     "wrong password",
			username: "user@acme.test",
			password: "nope",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface) {
				l.EXPECT().Allowed(gomock.Any(), "user@acme.test").Return(true, nil)
				s.EXPECT().GetUserByUsername(gomock.Any(), "user@acme.test").Return(member, nil)
				l.EXPECT().Fail(gomock.Any(), "user@acme.test").Return(int64(1), nil)
			},
			expectedErr: authorization.ErrUnauthenticated,
		},
		{
			name:     "unknown user",
			username: "ghost@acme.test",
			password: "password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface) {
				l.EXPECT().Allowed(gomock.Any(), "ghost@acme.test").Return(true, nil)
				s.EXPECT().GetUserByUsername(gomock.Any(), "ghost@acme.test").Return(nil, storage.ErrNotFound)
				l.EXPECT().Fail(gomock.Any(), "ghost@acme.test").Return(int64(1), nil)
			},
			expectedErr: authorization.ErrUnauthenticated,
		},
		{
			name:     "throttled",
			username: "user@acme.test",
			password: "password",
			setupMocks: func(_ *MockStorageInterface, l *MockLimiterInterface) {
				l.EXPECT().Allowed(gomock.Any(), "user@acme.test").Return(false, nil)
			},
			expectedErr: authorization.ErrTooManyAttempts,
		},
		{
			name:     "limiter down fails open",
			username: "user@acme.test",
			password: "password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface) {
				l.EXPECT().Allowed(gomock.Any(), "user@acme.test").Return(true, errors.New("redis down"))
				s.EXPECT().GetUserByUsername(gomock.Any(), "user@acme.test").Return(member, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(&types.Tenant{ID: "acme", Plan: types.PlanFree}, nil)
				l.EXPECT().Reset(gomock.Any(), "user@acme.test").Return(errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLimiter := NewMockLimiterInterface(ctrl)
			tt.setupMocks(mockStorage, mockLimiter)

			clock := &testClock{now: time.Now()}
			tokens := newTestTokenService(t, testSecret, testIssuer, clock)

			s, err := NewService(mockStorage, tokens, hasher, mockLimiter, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logging.NewNoopLogger())
			if err != nil {
				t.Fatalf("failed to create service: %v", err)
			}

			result, err := s.Login(context.Background(), tt.username, tt.password)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.TokenType != "bearer" || result.ExpiresIn != 3600 {
				t.Errorf("unexpected result %+v", result)
			}

			claims, err := tokens.Verify(context.Background(), result.AccessToken)
			if err != nil {
				t.Fatalf("issued token does not verify: %v", err)
			}

			if claims.Subject != tt.username || claims.TenantID != "acme" {
				t.Errorf("unexpected claims %+v", claims)
			}

			if result.Principal.Role != types.RoleMember || result.Principal.Plan != types.PlanFree {
				t.Errorf("unexpected principal %+v", result.Principal)
			}
		})
	}
}
