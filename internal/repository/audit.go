package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/shenikar/agri_incident_tracker/internal/service"
)

// execer - часть pgxpool.Pool, нужная архиву
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// AuditRepository дублирует записи аудита в PostgreSQL. Таблица только пополняется,
// сервис её не читает.
type AuditRepository struct {
	db execer
}

func NewAuditRepository(db execer) service.AuditArchive {
	return &AuditRepository{db: db}
}

// Append записывает одну запись аудита инцидента
func (r *AuditRepository) Append(ctx context.Context, incidentID string, entry models.AuditEntry) error {
	at, err := time.Parse(service.TimeLayout, entry.At)
	if err != nil {
		return fmt.Errorf("invalid audit timestamp %q: %w", entry.At, err)
	}

	query := `
		INSERT INTO incident_audit_events (incident_id, event, occurred_at)
		VALUES ($1, $2, $3);
	`
	tag, err := r.db.Exec(ctx, query, incidentID, entry.Event, at)
	if err != nil {
		return fmt.Errorf("failed to archive audit entry: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("unexpected rows affected while archiving audit entry: %d", tag.RowsAffected())
	}
	return nil
}
