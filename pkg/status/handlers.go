// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	httptypes "github.com/canonical/notes-service/internal/http/types"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/version"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	healthTimeout = 5 * time.Second
)

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"buildInfo,omitempty"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type HealthStatus struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type API struct {
	dependencies map[string]DependencyInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
	mux.Get("/health", a.health)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: buildInfo()})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	httptypes.WriteJSON(w, http.StatusOK, buildInfo())
}

// health pings every dependency concurrently and answers 503 if any is down.
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp := HealthStatus{Status: StatusHealthy, Dependencies: make(map[string]string, len(a.dependencies))}

	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, name := range names {
		dep := a.dependencies[name]

		g.Go(func() error {
			err := dep.Ping(gctx)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				a.logger.Warnf("dependency %s is unhealthy: %v", name, err)
				resp.Dependencies[name] = StatusUnhealthy
				return nil
			}

			resp.Dependencies[name] = StatusHealthy
			return nil
		})
	}

	_ = g.Wait()

	code := http.StatusOK
	for _, s := range resp.Dependencies {
		if s != StatusHealthy {
			resp.Status = StatusUnhealthy
			code = http.StatusServiceUnavailable
		}
	}

	httptypes.WriteJSON(w, code, resp)
}

func buildInfo() *BuildInfo {
	info := &BuildInfo{Version: version.Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Name = bi.Main.Path

	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" {
			info.CommitHash = setting.Value
		}
	}

	return info
}

func NewAPI(dependencies map[string]DependencyInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.dependencies = dependencies
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
