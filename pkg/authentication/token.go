// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

var ErrInvalidToken = fmt.Errorf("invalid token")

// Claims are the identity assertions carried by an access token.
type Claims struct {
	Subject   string
	Role      types.Role
	TenantID  string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type privateClaims struct {
	Role     types.Role `json:"role"`
	TenantID string     `json:"tenant_id"`
}

type tokenClaims struct {
	Subject  string           `json:"sub"`
	Role     types.Role       `json:"role"`
	TenantID string           `json:"tenant_id"`
	Issuer   string           `json:"iss"`
	IssuedAt *jwt.NumericDate `json:"iat"`
	Expiry   *jwt.NumericDate `json:"exp"`
}

// TokenService issues and verifies EdDSA signed JWTs.
// The key pair is derived from a shared secret so every replica agrees on it.
type TokenService struct {
	issuer   string
	signer   jose.Signer
	verifier *oidc.IDTokenVerifier
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *TokenService) Issue(ctx context.Context, c Claims, ttl time.Duration) (string, error) {
	_, span := s.tracer.Start(ctx, "authentication.TokenService.Issue")
	defer span.End()

	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive")
	}

	now := s.now()

	raw, err := jwt.Signed(s.signer).
		Claims(jwt.Claims{
			Subject:  c.Subject,
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(now.Add(ttl)),
		}).
		Claims(privateClaims{Role: c.Role, TenantID: c.TenantID}).
		Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return raw, nil
}

// Verify returns the claims of a token whose signature, issuer and expiry are valid.
// Any failure is reported as ErrInvalidToken.
func (s *TokenService) Verify(ctx context.Context, raw string) (*Claims, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.TokenService.Verify")
	defer span.End()

	idToken, err := s.verifier.Verify(ctx, raw)
	if err != nil {
		s.logger.Debugf("token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	var tc tokenClaims
	if err := idToken.Claims(&tc); err != nil {
		s.logger.Debugf("failed to decode token claims: %v", err)
		return nil, ErrInvalidToken
	}

	if tc.Expiry == nil || !s.now().Before(tc.Expiry.Time()) {
		return nil, ErrInvalidToken
	}

	c := &Claims{
		Subject:   tc.Subject,
		Role:      tc.Role,
		TenantID:  tc.TenantID,
		Issuer:    tc.Issuer,
		ExpiresAt: tc.Expiry.Time(),
	}
	if tc.IssuedAt != nil {
		c.IssuedAt = tc.IssuedAt.Time()
	}

	return c, nil
}

// DeriveSigningKey turns the configured secret into an Ed25519 key pair.
func DeriveSigningKey(secret string) (ed25519.PrivateKey, ed25519.PublicKey) {
	seed := sha256.Sum256([]byte(secret))
	priv := ed25519.NewKeyFromSeed(seed[:])

	return priv, priv.Public().(ed25519.PublicKey)
}

func NewTokenService(secret, issuer string, now func() time.Time, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is required")
	}

	if now == nil {
		now = time.Now
	}

	priv, pub := DeriveSigningKey(secret)

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.EdDSA, Key: priv},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token signer: %w", err)
	}

	verifier := oidc.NewVerifier(
		issuer,
		&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{pub}},
		&oidc.Config{
			SkipClientIDCheck:    true,
			SupportedSigningAlgs: []string{oidc.EdDSA},
			Now:                  now,
		},
	)

	s := new(TokenService)
	s.issuer = issuer
	s.signer = signer
	s.verifier = verifier
	s.now = now
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
