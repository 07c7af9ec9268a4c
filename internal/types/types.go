// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"strings"
	"time"
)

// Plan is the subscription tier of a tenant
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPro
}

// ParsePlan rejects anything that is not a known plan
func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown plan %q", s)
	}
	return p, nil
}

// Role is the fixed role of a user within its tenant
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// ParseRole rejects anything that is not a known role
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Plan      Plan      `db:"plan"`
	CreatedAt time.Time `db:"created_at"`
}

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	TenantID     string    `db:"tenant_id"`
	Name         string    `db:"name"`
	Plan         Plan      `db:"plan"`
	CreatedAt    time.Time `db:"created_at"`
}

type Note struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	TenantID  string    `db:"tenant_id"`
	Owner     string    `db:"owner"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Principal is the identity of the caller, rebuilt from the store on every request
type Principal struct {
	ID       string
	Username string
	Role     Role
	TenantID string
	Name     string
	// Plan mirrors the tenant plan at resolution time
	Plan Plan
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
