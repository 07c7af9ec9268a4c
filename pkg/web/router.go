// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/notes-service/internal/db"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/pkg/authentication"
	"github.com/canonical/notes-service/pkg/metrics"
	"github.com/canonical/notes-service/pkg/notes"
	"github.com/canonical/notes-service/pkg/status"
	"github.com/canonical/notes-service/pkg/tenant"
	"github.com/canonical/notes-service/pkg/users"
)

func NewRouter(
	authService authentication.ServiceInterface,
	authMiddleware *authentication.Middleware,
	notesService notes.ServiceInterface,
	tenantService tenant.ServiceInterface,
	usersService users.ServiceInterface,
	authorizer AuthorizerInterface,
	dbClient db.DBClientInterface,
	dependencies map[string]status.DependencyInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))

		authentication.NewAPI(authService, tracer, monitor, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate())

			notes.NewAPI(notesService, tracer, monitor, logger).RegisterEndpoints(r)
			tenant.NewAPI(tenantService, authorizer, tracer, monitor, logger).RegisterEndpoints(r)
			users.NewAPI(usersService, authorizer, tracer, monitor, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
