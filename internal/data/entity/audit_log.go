package entity

import (
	"github.com/google/uuid"
)

// AuditLog is append-only; every admin mutation writes one entry.
type AuditLog struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Action  string    `db:"action"`
	Details *string   `db:"details"`
}
