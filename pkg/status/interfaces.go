// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// DependencyInterface is anything /health can check, the database pool and the login limiter.
type DependencyInterface interface {
	Ping(ctx context.Context) error
}
