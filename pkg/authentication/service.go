// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

const (
	reasonInvalidCredentials = "invalid credentials"
	reasonTooManyAttempts    = "too many failed login attempts, try again later"
	dummyPassword            = "notes-service-dummy-password"
)

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	Principal   *types.Principal
}

type Service struct {
	storage StorageInterface
	tokens  TokenServiceInterface
	hasher  PasswordHasherInterface
	limiter LimiterInterface
	ttl     time.Duration

	// dummyHash is checked when the user does not exist so both paths cost the same
	dummyHash string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	allowed, err := s.limiter.Allowed(ctx, username)
	if err != nil {
		s.logger.Warnf("login limiter unavailable: %v", err)
	}
	if !allowed {
		s.logger.Security().AuthnLoginLock(username)
		return nil, authorization.NewError(authorization.ErrTooManyAttempts, reasonTooManyAttempts)
	}

	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	encoded := s.dummyHash
	if user != nil {
		encoded = user.PasswordHash
	}

	ok, err := s.hasher.Verify(ctx, password, encoded)
	if err != nil {
		s.logger.Errorf("failed to verify password of %s: %v", username, err)
		ok = false
	}

	if user == nil || !ok {
		return nil, s.fail(ctx, username)
	}

	tenant, err := s.storage.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	token, err := s.tokens.Issue(ctx, Claims{Subject: user.Username, Role: user.Role, TenantID: user.TenantID}, s.ttl)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.logger.Warnf("failed to reset login attempts: %v", err)
	}

	s.logger.Security().AuthnLoginSuccess(username)

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		Principal:   principalOf(user, tenant),
	}, nil
}

func (s *Service) fail(ctx context.Context, username string) error {
	s.logger.Security().AuthnLoginFail(username)

	if _, err := s.limiter.Fail(ctx, username); err != nil {
		s.logger.Warnf("failed to record failed login: %v", err)
	}

	return authorization.NewError(authorization.ErrUnauthenticated, reasonInvalidCredentials)
}

func NewService(
	s StorageInterface,
	tokens TokenServiceInterface,
	hasher PasswordHasherInterface,
	limiter LimiterInterface,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Service, error) {
	dummyHash, err := hasher.Hash(context.Background(), dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Service{
		storage:   s,
		tokens:    tokens,
		hasher:    hasher,
		limiter:   limiter,
		ttl:       ttl,
		dummyHash: dummyHash,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}, nil
}
