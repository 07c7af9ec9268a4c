// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/canonical/notes-service/internal/authorization"
	httptypes "github.com/canonical/notes-service/internal/http/types"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
)

type Middleware struct {
	verifier TokenVerifierInterface
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate verifies the bearer token, resolves a fresh principal and stores it in the request context.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorized(w, "missing authorization header")
				return
			}

			claims, err := m.verifier.Verify(ctx, token)
			if err != nil {
				m.logger.Security().AuthnTokenInvalid("")
				m.unauthorized(w, "invalid token")
				return
			}

			principal, err := m.resolver.Resolve(ctx, claims)
			if err != nil {
				if errors.Is(err, authorization.ErrUnauthenticated) || errors.Is(err, authorization.ErrNotFound) {
					m.logger.Security().AuthnTokenInvalid(claims.Subject)
					m.unauthorized(w, authorization.Reason(err, "invalid token"))
					return
				}

				httptypes.WriteError(w, m.logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	scheme, token, ok := strings.Cut(bearer, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func (m *Middleware) unauthorized(w http.ResponseWriter, message string) {
	httptypes.WriteError(w, m.logger, authorization.NewError(authorization.ErrUnauthenticated, message))
}

func NewMiddleware(verifier TokenVerifierInterface, resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
