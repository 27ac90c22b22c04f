package repository

import (
	"marrakech-tours/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the per-collection interfaces. The postgres
// implementations live in this package; internal/data/memory provides the
// volatile fallback used when no database is reachable.
type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Activity ActivityRepository
	Booking  BookingRepository
	Review   ReviewRepository
	AuditLog AuditLogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Activity: NewActivityRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Review:   NewReviewRepository(db, log),
		AuditLog: NewAuditLogRepository(db, log),
	}
}
