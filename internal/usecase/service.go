package usecase

import (
	"context"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/pkg/database"
	"marrakech-tours/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Activity  ActivityService
	Booking   BookingService
	Review    ReviewService
	Analytics AnalyticsService
}

// NewService wires every service against the shared repository group.
// db is nil when the in-memory store is active; storageMode names the
// active backend for health reporting.
func NewService(repo *repository.Repository, db database.PgxIface, storageMode string, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Activity:  NewActivityService(repo, log),
		Booking:   NewBookingService(repo, log),
		Review:    NewReviewService(repo, log),
		Analytics: NewAnalyticsService(repo, db, storageMode, log),
	}
}

// recordAudit appends an audit entry for an admin action. Failures are
// logged and swallowed so a broken audit trail never blocks the action
// itself.
func recordAudit(ctx context.Context, repo repository.AuditLogRepository, log *zap.Logger, userID uuid.UUID, action, details string) {
	entry := &entity.AuditLog{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		Action: action,
	}
	if details != "" {
		entry.Details = &details
	}

	if err := repo.Create(ctx, entry); err != nil {
		log.Warn("Failed to write audit log",
			zap.Error(err),
			zap.String("action", action),
			zap.String("user_id", userID.String()),
		)
	}
}
