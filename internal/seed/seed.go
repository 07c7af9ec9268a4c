// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

//go:embed fixtures/demo.yaml
var fixtures embed.FS

const demoFixture = "fixtures/demo.yaml"

type Fixture struct {
	Tenants []TenantFixture `yaml:"tenants"`
	Users   []UserFixture   `yaml:"users"`
}

type TenantFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Plan string `yaml:"plan"`
}

type UserFixture struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Tenant   string `yaml:"tenant"`
	Name     string `yaml:"name"`
}

// Report counts what Apply created, rows that already existed are skipped.
type Report struct {
	TenantsCreated int
	UsersCreated   int
	Skipped        int
}

// Load reads a fixture from path, the embedded demo fixture is used when path is empty.
func Load(path string) (*Fixture, error) {
	var (
		data []byte
		err  error
	)

	if path == "" {
		data, err = fixtures.ReadFile(demoFixture)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

func Parse(r io.Reader) (*Fixture, error) {
	f := new(Fixture)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Fixture) validate() error {
	tenants := make(map[string]struct{}, len(f.Tenants))

	for _, t := range f.Tenants {
		if t.ID == "" || t.Name == "" {
			return fmt.Errorf("tenant needs an id and a name")
		}

		if _, err := types.ParsePlan(t.Plan); err != nil {
			return fmt.Errorf("tenant %s: %w", t.ID, err)
		}

		tenants[t.ID] = struct{}{}
	}

	for _, u := range f.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("user needs a username and a password")
		}

		if _, err := types.ParseRole(u.Role); err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}

		if _, ok := tenants[u.Tenant]; !ok {
			return fmt.Errorf("user %s references unknown tenant %q", u.Username, u.Tenant)
		}
	}

	return nil
}

type Seeder struct {
	storage StorageInterface
	hasher  PasswordHasherInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Apply inserts the fixture, it can be run repeatedly against the same database.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.Apply")
	defer span.End()

	report := new(Report)
	plans := make(map[string]types.Plan, len(f.Tenants))

	for _, t := range f.Tenants {
		plan, _ := types.ParsePlan(t.Plan)

		existing, err := s.storage.GetTenantByID(ctx, t.ID)
		if err == nil {
			plans[t.ID] = existing.Plan
			report.Skipped++
			continue
		}

		if !errors.Is(err, storage.ErrNotFound) {
			return report, fmt.Errorf("failed to look up tenant %s: %w", t.ID, err)
		}

		if _, err := s.storage.CreateTenant(ctx, &types.Tenant{ID: t.ID, Name: t.Name, Plan: plan}); err != nil {
			return report, fmt.Errorf("failed to create tenant %s: %w", t.ID, err)
		}

		plans[t.ID] = plan
		report.TenantsCreated++
		s.logger.Infof("created tenant %s", t.ID)
	}

	for _, u := range f.Users {
		_, err := s.storage.GetUserByUsername(ctx, u.Username)
		if err == nil {
			report.Skipped++
			continue
		}

		if !errors.Is(err, storage.ErrNotFound) {
			return report, fmt.Errorf("failed to look up user %s: %w", u.Username, err)
		}

		hash, err := s.hasher.Hash(ctx, u.Password)
		if err != nil {
			return report, fmt.Errorf("failed to hash password of %s: %w", u.Username, err)
		}

		role, _ := types.ParseRole(u.Role)

		_, err = s.storage.CreateUser(
			ctx,
			&types.User{
				Username:     u.Username,
				PasswordHash: hash,
				Role:         role,
				TenantID:     u.Tenant,
				Name:         u.Name,
				Plan:         plans[u.Tenant],
			},
		)
		if err != nil {
			return report, fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}

		report.UsersCreated++
		s.logger.Security().UserCreated(u.Username, "seed")
	}

	return report, nil
}

func NewSeeder(s StorageInterface, hasher PasswordHasherInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Seeder {
	sd := new(Seeder)
	sd.storage = s
	sd.hasher = hasher
	sd.tracer = tracer
	sd.logger = logger

	return sd
}
