// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

const (
	testSecret = "test-signing-secret"
	testIssuer = "notes-service"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newTestTokenService(t *testing.T, secret, issuer string, clock *testClock) *TokenService {
	t.Helper()

	s, err := NewTokenService(secret, issuer, clock.Now, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	return s
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := newTestTokenService(t, testSecret, testIssuer, clock)

	raw, err := s.Issue(context.Background(), Claims{Subject: "admin@acme.test", Role: types.RoleAdmin, TenantID: "acme"}, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.now = clock.now.Add(30 * time.Minute)

	claims, err := s.Verify(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Subject != "admin@acme.test" || claims.Role != types.RoleAdmin || claims.TenantID != "acme" {
		t.Errorf("unexpected claims %+v", claims)
	}

	if claims.Issuer != testIssuer {
		t.Errorf("expected issuer %q, got %q", testIssuer, claims.Issuer)
	}

	if !claims.ExpiresAt.Equal(time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected expiry %v", claims.ExpiresAt)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token func(t *testing.T) string
		now   time.Time
	}{
		{
			name: "expired exactly at exp",
			token: func(t *testing.T) string {
				return issue(t, newTestTokenService(t, testSecret, testIssuer, &testClock{now: issuedAt}))
			},
			now: issuedAt.Add(time.Hour),
		},
		{
			name: "expired after exp",
			token: func(t *testing.T) string {
				return issue(t, newTestTokenService(t, testSecret, testIssuer, &testClock{now: issuedAt}))
			},
			now: issuedAt.Add(2 * time.Hour),
		},
		{
			name: "signed with a foreign key",
			token: func(t *testing.T) string {
				return issue(t, newTestTokenService(t, "another-secret", testIssuer, &testClock{now: issuedAt}))
			},
			now: issuedAt.Add(time.Minute),
		},
		{
			name: "issued by someone else",
			token: func(t *testing.T) string {
				return issue(t, newTestTokenService(t, testSecret, "https://evil.example", &testClock{now: issuedAt}))
			},
			now: issuedAt.Add(time.Minute),
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				parts := strings.Split(issue(t, newTestTokenService(t, testSecret, testIssuer, &testClock{now: issuedAt})), ".")
				other := strings.Split(issueFor(t, newTestTokenService(t, testSecret, testIssuer, &testClock{now: issuedAt}), "admin@globex.test"), ".")
				return parts[0] + "." + other[1] + "." + parts[2]
			},
			now: issuedAt.Add(time.Minute),
		},
		{
			name:  "malformed",
			token: func(*testing.T) string { return "not-a-jwt" },
			now:   issuedAt,
		},
		{
			name:  "empty",
			token: func(*testing.T) string { return "" },
			now:   issuedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.token(t)

			verifier := newTestTokenService(t, testSecret, testIssuer, &testClock{now: tt.now})

			claims, err := verifier.Verify(context.Background(), raw)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
			if claims != nil {
				t.Errorf("expected no claims, got %+v", claims)
			}
		})
	}
}

func TestTokenService_IssueRejectsNonPositiveTTL(t *testing.T) {
	s := newTestTokenService(t, testSecret, testIssuer, &testClock{now: time.Now()})

	if _, err := s.Issue(context.Background(), Claims{Subject: "a"}, 0); err == nil {
		t.Error("expected error for zero ttl")
	}
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService("", testIssuer, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logging.NewNoopLogger()); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestDeriveSigningKey_IsDeterministic(t *testing.T) {
	priv1, pub1 := DeriveSigningKey(testSecret)
	priv2, pub2 := DeriveSigningKey(testSecret)
	_, pub3 := DeriveSigningKey("other")

	if !priv1.Equal(priv2) || !pub1.Equal(pub2) {
		t.Error("expected the same secret to derive the same key pair")
	}

	if pub1.Equal(pub3) {
		t.Error("expected different secrets to derive different keys")
	}
}

func issue(t *testing.T, s *TokenService) string {
	return issueFor(t, s, "user@acme.test")
}

func issueFor(t *testing.T, s *TokenService, subject string) string {
	t.Helper()

	raw, err := s.Issue(context.Background(), Claims{Subject: subject, Role: types.RoleMember, TenantID: "acme"}, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	return raw
}
