// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logging.NewNoopLogger())
}

func TestService_GetPlan(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expected    types.Plan
		expectedErr error
	}{
		{
			name: "free tenant",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(&types.Tenant{ID: "acme", Plan: types.PlanFree}, nil)
			},
			expected: types.PlanFree,
		},
		{
			name: "missing tenant",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
			},
			expectedErr: authorization.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			plan, err := newTestService(mockStorage).GetPlan(context.Background(), "acme")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if plan != tt.expected {
				t.Errorf("expected plan %s, got %s", tt.expected, plan)
			}
		})
	}
}

func TestService_Upgrade(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "free to pro",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpgradeTenantPlan(gomock.Any(), "acme", types.PlanPro).Return(true, nil)
			},
		},
		{
			name: "already pro is a no-op",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpgradeTenantPlan(gomock.Any(), "acme", types.PlanPro).Return(false, nil)
			},
		},
		{
			name: "missing tenant",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpgradeTenantPlan(gomock.Any(), "acme", types.PlanPro).Return(false, storage.ErrNotFound)
			},
			expectedErr: authorization.ErrNotFound,
		},
		{
			name: "store failure",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpgradeTenantPlan(gomock.Any(), "acme", types.PlanPro).Return(false, storeErr)
			},
			expectedErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			plan, err := newTestService(mockStorage).Upgrade(context.Background(), "acme")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if plan != types.PlanPro {
				t.Errorf("expected pro, got %s", plan)
			}
		})
	}
}

func TestService_SetMemberPlan(t *testing.T) {
	tests := []struct {
		name        string
		plan        types.Plan
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "member",
			plan: types.PlanPro,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpdateMemberPlan(gomock.Any(), "acme", "u2", types.PlanPro).Return(nil)
			},
		},
		{
			name: "admin or unknown target",
			plan: types.PlanPro,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpdateMemberPlan(gomock.Any(), "acme", "u2", types.PlanPro).Return(storage.ErrNotFound)
			},
			expectedErr: authorization.ErrNotFound,
		},
		{
			name:        "unknown plan",
			plan:        types.Plan("enterprise"),
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: authorization.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			err := newTestService(mockStorage).SetMemberPlan(context.Background(), "acme", "u2", tt.plan)

			if tt.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "globex").Return(&types.Tenant{ID: "globex", Name: "Globex", Plan: types.PlanFree}, nil)

	s := newTestService(mockStorage)

	tenant, err := s.Current(context.Background(), &types.Principal{TenantID: "globex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tenant.ID != "globex" {
		t.Errorf("expected the caller tenant, got %+v", tenant)
	}

	if _, err := s.Current(context.Background(), nil); !errors.Is(err, authorization.ErrUnauthenticated) {
		t.Errorf("expected unauthenticated without principal, got %v", err)
	}
}

func TestService_CreateTenant(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		tenantName  string
		plan        types.Plan
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:       "defaults to free",
			id:         "acme",
			tenantName: "Acme",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{ID: "acme", Name: "Acme", Plan: types.PlanFree}).
					Return(&types.Tenant{ID: "acme", Name: "Acme", Plan: types.PlanFree}, nil)
			},
		},
		{
			name:        "missing name",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: authorization.ErrInvalid,
		},
		{
			name:        "unknown plan",
			tenantName:  "Acme",
			plan:        types.Plan("gold"),
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: authorization.ErrInvalid,
		},
		{
			name:       "duplicate",
			tenantName: "Acme",
			plan:       types.PlanPro,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			_, err := newTestService(mockStorage).CreateTenant(context.Background(), tt.id, tt.tenantName, tt.plan)

			if tt.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
