package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecer struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
	err  error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = arguments
	return f.tag, f.err
}

func TestAppend_Success(t *testing.T) {
	db := &fakeExecer{tag: pgconn.NewCommandTag("INSERT 0 1")}
	repo := NewAuditRepository(db)

	err := repo.Append(context.Background(), "inc-000001", models.AuditEntry{
		Event: "created",
		At:    "2025-06-01T12:30:00.000Z",
	})

	require.NoError(t, err)
	assert.Contains(t, db.sql, "INSERT INTO incident_audit_events")
	require.Len(t, db.args, 3)
	assert.Equal(t, "inc-000001", db.args[0])
	assert.Equal(t, "created", db.args[1])
	assert.Equal(t, time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC), db.args[2])
}

func TestAppend_InvalidTimestamp(t *testing.T) {
	db := &fakeExecer{}
	repo := NewAuditRepository(db)

	err := repo.Append(context.Background(), "inc-000001", models.AuditEntry{Event: "created", At: "yesterday"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid audit timestamp")
	assert.Empty(t, db.sql) // До базы не дошли
}

func TestAppend_ExecError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := NewAuditRepository(&fakeExecer{err: dbErr})

	err := repo.Append(context.Background(), "inc-000001", models.AuditEntry{Event: "created", At: "2025-06-01T12:30:00.000Z"})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestAppend_NoRowsAffected(t *testing.T) {
	repo := NewAuditRepository(&fakeExecer{tag: pgconn.NewCommandTag("INSERT 0 0")})

	err := repo.Append(context.Background(), "inc-000001", models.AuditEntry{Event: "created", At: "2025-06-01T12:30:00.000Z"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected rows affected")
}
