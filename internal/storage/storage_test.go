// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/notes-service/internal/db"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

// sqlmockClient runs statements against a sqlmock connection, joining the
// transaction carried by the context the same way the pgx backed client does.
type sqlmockClient struct {
	sqlDB *sql.DB
}

func (c *sqlmockClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if tx, _ := db.TxFromContext(ctx); tx != nil {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.sqlDB)
}

func (c *sqlmockClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return db.RunInTx(ctx, func() (db.TxInterface, context.CancelFunc, error) {
		tx, err := c.sqlDB.BeginTx(ctx, nil)
		return tx, func() {}, err
	}, fn)
}

func (c *sqlmockClient) Ping(ctx context.Context) error {
	return c.sqlDB.PingContext(ctx)
}

func (c *sqlmockClient) Close() {
	_ = c.sqlDB.Close()
}

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := NewStorage(&sqlmockClient{sqlDB: sqlDB}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logging.NewNoopLogger())

	return s, mock
}

var (
	tenantRowColumns = []string{"id", "name", "plan", "created_at"}
	userRowColumns   = []string{"id", "username", "password_hash", "role", "tenant_id", "name", "plan", "created_at"}
	noteRowColumns   = []string{"id", "title", "content", "tenant_id", "owner", "created_at", "updated_at"}
)

func TestCreateTenant(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO tenants \\(id,name,plan\\)").
		WithArgs("acme", "Acme", "free").
		WillReturnRows(sqlmock.NewRows(tenantRowColumns).AddRow("acme", "Acme", "free", now))

	tenant, err := s.CreateTenant(context.Background(), &types.Tenant{ID: "acme", Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant.ID)
	assert.Equal(t, types.PlanFree, tenant.Plan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTenant_Duplicate(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("INSERT INTO tenants").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation})

	_, err := s.CreateTenant(context.Background(), &types.Tenant{Name: "Acme"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTenantByID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT id, name, plan, created_at FROM tenants WHERE id = ").
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows(tenantRowColumns).AddRow("acme", "Acme", "pro", time.Now()))

	tenant, err := s.GetTenantByID(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, types.PlanPro, tenant.Plan)

	mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = ").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err = s.GetTenantByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTenants(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM tenants ORDER BY created_at, id").
		WillReturnRows(sqlmock.NewRows(tenantRowColumns).
			AddRow("acme", "Acme", "free", time.Now()).
			AddRow("globex", "Globex", "pro", time.Now()))

	tenants, err := s.ListTenants(context.Background())
	require.NoError(t, err)
	assert.Len(t, tenants, 2)
	assert.Equal(t, "globex", tenants[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpgradeTenantPlan(t *testing.T) {
	tests := []struct {
		name            string
		setup           func(sqlmock.Sqlmock)
		expectedChanged bool
		expectedErr     error
	}{
		{
			name: "free tenant is upgraded",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tenants SET plan = (.+) WHERE id = (.+) AND plan <> ").
					WithArgs("pro", "acme", "pro").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedChanged: true,
		},
		{
			name: "already pro tenant is untouched",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tenants SET plan").
					WithArgs("pro", "acme", "pro").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = ").
					WithArgs("acme").
					WillReturnRows(sqlmock.NewRows(tenantRowColumns).AddRow("acme", "Acme", "pro", time.Now()))
			},
			expectedChanged: false,
		},
		{
			name: "unknown tenant",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tenants SET plan").
					WithArgs("pro", "acme", "pro").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = ").
					WithArgs("acme").
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setup(mock)

			changed, err := s.UpgradeTenantPlan(context.Background(), "acme", types.PlanPro)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedChanged, changed)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "user@acme.test", "hash", "member", "acme", "", "free").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u1", "user@acme.test", "hash", "member", "acme", "", "free", time.Now()))

	u, err := s.CreateUser(context.Background(), &types.User{Username: "user@acme.test", PasswordHash: "hash", Role: types.RoleMember, TenantID: "acme"})
	require.NoError(t, err)
	assert.Equal(t, types.RoleMember, u.Role)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation})

	_, err = s.CreateUser(context.Background(), &types.User{Username: "x", TenantID: "missing"})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("admin@acme.test").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u1", "admin@acme.test", "hash", "admin", "acme", "Admin", "free", time.Now()))

	u, err := s.GetUserByUsername(context.Background(), "admin@acme.test")
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, u.Role)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = s.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_TenantScoped(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = (.+) AND tenant_id = ").
		WithArgs("u9", "acme").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetUserByID(context.Background(), "acme", "u9")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembers(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE role = (.+) AND tenant_id = (.+) ORDER BY created_at, id").
		WithArgs("member", "acme").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u2", "user@acme.test", "hash", "member", "acme", "", "free", time.Now()))

	members, err := s.ListMembers(context.Background(), "acme")
	require.NoError(t, err)
	assert.Len(t, members, 1)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE role = (.+) AND tenant_id = ").
		WithArgs("member", "acme").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := s.CountMembers(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMemberPlan(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec("UPDATE users SET plan = (.+) WHERE id = (.+) AND role = (.+) AND tenant_id = ").
		WithArgs("pro", "u2", "member", "acme").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateMemberPlan(context.Background(), "acme", "u2", types.PlanPro))

	mock.ExpectExec("UPDATE users SET plan").
		WithArgs("pro", "u1", "member", "acme").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.UpdateMemberPlan(context.Background(), "acme", "u1", types.PlanPro), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM notes WHERE tenant_id = (.+) ORDER BY created_at, id LIMIT 10 OFFSET 10").
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("n1", "t", "c", "acme", "user@acme.test", now, now))

	notes, err := s.ListNotes(context.Background(), "acme", 2, 10)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "acme", notes[0].TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNote_OtherTenantIsNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM notes WHERE id = (.+) AND tenant_id = ").
		WithArgs("n1", "globex").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetNote(context.Background(), "globex", "n1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNote(t *testing.T) {
	note := &types.Note{Title: "t", Content: "c", TenantID: "acme", Owner: "user@acme.test"}

	tests := []struct {
		name        string
		limit       int64
		setup       func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name:  "under the limit",
			limit: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM tenants WHERE id = (.+) FOR UPDATE").
					WithArgs("acme").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acme"))
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notes WHERE tenant_id = ").
					WithArgs("acme").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
				mock.ExpectQuery("INSERT INTO notes").
					WithArgs(sqlmock.AnyArg(), "t", "c", "acme", "user@acme.test").
					WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("n3", "t", "c", "acme", "user@acme.test", time.Now(), time.Now()))
				mock.ExpectCommit()
			},
		},
		{
			name:  "at the limit",
			limit: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM tenants WHERE id = (.+) FOR UPDATE").
					WithArgs("acme").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acme"))
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notes").
					WithArgs("acme").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
				mock.ExpectRollback()
			},
			expectedErr: ErrQuotaExceeded,
		},
		{
			name:  "uncapped skips the count",
			limit: 0,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM tenants WHERE id = (.+) FOR UPDATE").
					WithArgs("acme").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acme"))
				mock.ExpectQuery("INSERT INTO notes").
					WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("n9", "t", "c", "acme", "user@acme.test", time.Now(), time.Now()))
				mock.ExpectCommit()
			},
		},
		{
			name:  "unknown tenant",
			limit: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM tenants WHERE id = (.+) FOR UPDATE").
					WithArgs("acme").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: ErrNotFound,
		},
		{
			name:  "insert fails",
			limit: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM tenants WHERE id = (.+) FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acme"))
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notes").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
				mock.ExpectQuery("INSERT INTO notes").
					WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setup(mock)

			created, err := s.CreateNote(context.Background(), note, tt.limit)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.name == "insert fails":
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "acme", created.TenantID)
				assert.Equal(t, "user@acme.test", created.Owner)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateNote(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE notes SET title = (.+), content = (.+), updated_at = NOW\\(\\) WHERE id = (.+) AND tenant_id = (.+) RETURNING").
		WithArgs("new", "body", "n1", "acme").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("n1", "new", "body", "acme", "user@acme.test", now, now))

	n, err := s.UpdateNote(context.Background(), &types.Note{ID: "n1", Title: "new", Content: "body", TenantID: "acme", Owner: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "user@acme.test", n.Owner)

	mock.ExpectQuery("UPDATE notes").
		WillReturnError(sql.ErrNoRows)

	_, err = s.UpdateNote(context.Background(), &types.Note{ID: "n1", TenantID: "globex"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNote(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec("DELETE FROM notes WHERE id = (.+) AND tenant_id = ").
		WithArgs("n1", "acme").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteNote(context.Background(), "acme", "n1"))

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("n1", "globex").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.DeleteNote(context.Background(), "globex", "n1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
