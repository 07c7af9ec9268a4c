// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"github.com/canonical/notes-service/pkg/tenant"
	"github.com/canonical/notes-service/pkg/users"
)

// AuthorizerInterface covers the checks the HTTP layer runs before touching a request body.
type AuthorizerInterface interface {
	tenant.AuthorizerInterface
	users.AuthorizerInterface
}
