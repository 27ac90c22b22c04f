package repository

import (
	"context"
	"fmt"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/pkg/database"

	"go.uber.org/zap"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}

type auditLogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditLogRepository(db database.PgxIface, log *zap.Logger) AuditLogRepository {
	return &auditLogRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit_log")),
	}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.Details,
		entry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("user_id", entry.UserID.String()),
			zap.String("action", entry.Action),
		)
		return fmt.Errorf("create audit log: %w", err)
	}

	return nil
}

func (r *auditLogRepository) FindRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, user_id, action, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query audit logs", zap.Error(err))
		return nil, fmt.Errorf("query audit logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.AuditLog
	for rows.Next() {
		var entry entity.AuditLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan audit log row", zap.Error(err))
			return nil, fmt.Errorf("scan audit log row: %w", err)
		}
		logs = append(logs, &entry)
	}

	return logs, nil
}
