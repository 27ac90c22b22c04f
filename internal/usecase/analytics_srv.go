package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/dto/response"
	"marrakech-tours/pkg/database"
	"marrakech-tours/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	Health(ctx context.Context) (*response.HealthResponse, error)

	// Admin dashboards
	ActivityStats(ctx context.Context) ([]response.ActivityAnalytics, error)
	BookingStats(ctx context.Context) (*response.BookingAnalytics, error)

	// Superadmin dashboards
	Earnings(ctx context.Context) (*response.EarningsResponse, error)
	PriceComparison(ctx context.Context) ([]response.PriceComparison, error)
	SystemHealth(ctx context.Context) (*response.SystemHealthResponse, error)
	RecentAuditLogs(ctx context.Context) ([]response.AuditLogResponse, error)
}

const auditLogLimit = 100

type analyticsService struct {
	repo        *repository.Repository
	db          database.PgxIface
	storageMode string
	startedAt   time.Time
	log         *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, db database.PgxIface, storageMode string, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo:        repo,
		db:          db,
		storageMode: storageMode,
		startedAt:   time.Now(),
		log:         log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) Health(ctx context.Context) (*response.HealthResponse, error) {
	status := "ok"
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			s.log.Warn("Database ping failed", zap.Error(err))
			status = "degraded"
		}
	}

	count, err := s.repo.Activity.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count activities", zap.Error(err))
		return nil, fmt.Errorf("count activities: %w", err)
	}

	return &response.HealthResponse{
		Status:     status,
		Storage:    s.storageMode,
		Activities: count,
		Timestamp:  time.Now(),
	}, nil
}

// ActivityStats reports booking counts for active activities only; retired
// activities drop off the dashboard even when old bookings reference them.
func (s *analyticsService) ActivityStats(ctx context.Context) ([]response.ActivityAnalytics, error) {
	activities, err := s.repo.Activity.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list activities", zap.Error(err))
		return nil, fmt.Errorf("list activities: %w", err)
	}

	counts, err := s.repo.Booking.CountByActivity(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings per activity", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	stats := make([]response.ActivityAnalytics, len(activities))
	for i, activity := range activities {
		stats[i] = response.ActivityAnalytics{
			ActivityID:   activity.ID.String(),
			Name:         activity.Name,
			BookingCount: counts[activity.ID],
		}
	}

	// Most booked first.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].BookingCount > stats[j].BookingCount
	})

	return stats, nil
}

func (s *analyticsService) BookingStats(ctx context.Context) (*response.BookingAnalytics, error) {
	counts, err := s.repo.Booking.CountByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings by status", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return &response.BookingAnalytics{
		Total:     counts.Total,
		Pending:   counts.Pending,
		Confirmed: counts.Confirmed,
		Completed: counts.Completed,
	}, nil
}

func (s *analyticsService) Earnings(ctx context.Context) (*response.EarningsResponse, error) {
	now := time.Now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart := currentStart.AddDate(0, -1, 0)
	nextStart := currentStart.AddDate(0, 1, 0)

	current, err := s.repo.Booking.SumPaidBetween(ctx, currentStart, nextStart)
	if err != nil {
		s.log.Error("Failed to sum current month earnings", zap.Error(err))
		return nil, fmt.Errorf("sum earnings: %w", err)
	}

	last, err := s.repo.Booking.SumPaidBetween(ctx, lastStart, currentStart)
	if err != nil {
		s.log.Error("Failed to sum last month earnings", zap.Error(err))
		return nil, fmt.Errorf("sum earnings: %w", err)
	}

	return &response.EarningsResponse{
		CurrentMonth: current,
		LastMonth:    last,
		Currency:     "MAD",
	}, nil
}

func (s *analyticsService) PriceComparison(ctx context.Context) ([]response.PriceComparison, error) {
	activities, err := s.repo.Activity.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list activities", zap.Error(err))
		return nil, fmt.Errorf("list activities: %w", err)
	}

	comparison := make([]response.PriceComparison, len(activities))
	for i, activity := range activities {
		entry := response.PriceComparison{
			ActivityID:        activity.ID.String(),
			Name:              activity.Name,
			Price:             activity.Price,
			GetYourGuidePrice: activity.GetYourGuidePrice,
		}
		if activity.GetYourGuidePrice != nil {
			advantage := *activity.GetYourGuidePrice - utils.ParseLeadingInt(activity.Price)
			entry.Advantage = &advantage
		}
		comparison[i] = entry
	}

	return comparison, nil
}

func (s *analyticsService) SystemHealth(ctx context.Context) (*response.SystemHealthResponse, error) {
	dbStatus := s.storageMode
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			s.log.Warn("Database ping failed", zap.Error(err))
			dbStatus = "unreachable"
		}
	}

	return &response.SystemHealthResponse{
		Database:  dbStatus,
		Uptime:    time.Since(s.startedAt).Round(time.Second).String(),
		Timestamp: time.Now(),
	}, nil
}

func (s *analyticsService) RecentAuditLogs(ctx context.Context) ([]response.AuditLogResponse, error) {
	logs, err := s.repo.AuditLog.FindRecent(ctx, auditLogLimit)
	if err != nil {
		s.log.Error("Failed to list audit logs", zap.Error(err))
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	responses := make([]response.AuditLogResponse, len(logs))
	for i, entry := range logs {
		responses[i] = response.AuditLogResponse{
			ID:        entry.ID.String(),
			UserID:    entry.UserID.String(),
			Action:    entry.Action,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		}
	}

	return responses, nil
}
