package usecase

import (
	"context"
	"fmt"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/dto/request"
	"marrakech-tours/internal/dto/response"
	"marrakech-tours/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityService interface {
	// Public catalog
	ListActive(ctx context.Context) ([]response.ActivityResponse, error)
	GetActivity(ctx context.Context, activityID string) (*response.ActivityResponse, error)
	GetRating(ctx context.Context, activityID string) (*response.RatingResponse, error)

	// Admin management
	ListAll(ctx context.Context) ([]response.ActivityResponse, error)
	CreateActivity(ctx context.Context, userID uuid.UUID, req *request.CreateActivityRequest) (*response.ActivityResponse, error)
	UpdateActivity(ctx context.Context, userID uuid.UUID, activityID string, req *request.UpdateActivityRequest) (*response.ActivityResponse, error)
	DeleteActivity(ctx context.Context, userID uuid.UUID, activityID string) error

	// Superadmin price tracking
	UpdateGetYourGuidePrice(ctx context.Context, userID uuid.UUID, activityID string, req *request.UpdateGetYourGuidePriceRequest) (*response.ActivityResponse, error)
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) ListActive(ctx context.Context) ([]response.ActivityResponse, error) {
	activities, err := s.repo.Activity.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active activities", zap.Error(err))
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return response.ActivitiesToResponse(activities), nil
}

func (s *activityService) GetActivity(ctx context.Context, activityID string) (*response.ActivityResponse, error) {
	activity, err := s.findActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) GetRating(ctx context.Context, activityID string) (*response.RatingResponse, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	avg, count, err := s.repo.Review.RatingStats(ctx, id)
	if err != nil {
		s.log.Error("Failed to compute rating", zap.Error(err), zap.String("activity_id", activityID))
		return nil, fmt.Errorf("compute rating: %w", err)
	}

	return &response.RatingResponse{
		AverageRating: avg,
		TotalReviews:  count,
	}, nil
}

func (s *activityService) ListAll(ctx context.Context) ([]response.ActivityResponse, error) {
	activities, err := s.repo.Activity.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list activities", zap.Error(err))
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return response.ActivitiesToResponse(activities), nil
}

func (s *activityService) CreateActivity(ctx context.Context, userID uuid.UUID, req *request.CreateActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	currency := req.Currency
	if currency == "" {
		currency = "MAD"
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Currency:          currency,
		Image:             req.Image,
		Photos:            req.Photos,
		Category:          req.Category,
		IsActive:          isActive,
		GetYourGuidePrice: req.GetYourGuidePrice,
		Availability:      req.Availability,
		Duration:          req.Duration,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Error("Failed to create activity", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create activity: %w", err)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "activity_created",
		fmt.Sprintf("id=%s name=%s", activity.ID.String(), activity.Name))

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("name", activity.Name),
		zap.String("price", activity.Price),
	)

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) UpdateActivity(ctx context.Context, userID uuid.UUID, activityID string, req *request.UpdateActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	activity, err := s.findActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	applyActivityUpdate(activity, req)
	activity.UpdatedAt = time.Now()

	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.log.Error("Failed to update activity", zap.Error(err), zap.String("activity_id", activityID))
		return nil, fmt.Errorf("update activity %s: %w", activityID, err)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "activity_updated",
		fmt.Sprintf("id=%s", activityID))

	s.log.Info("Activity updated", zap.String("activity_id", activityID))

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, userID uuid.UUID, activityID string) error {
	activity, err := s.findActivity(ctx, activityID)
	if err != nil {
		return err
	}

	if err := s.repo.Activity.Delete(ctx, activity.ID); err != nil {
		s.log.Error("Failed to delete activity", zap.Error(err), zap.String("activity_id", activityID))
		return fmt.Errorf("delete activity %s: %w", activityID, err)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "activity_deleted",
		fmt.Sprintf("id=%s name=%s", activityID, activity.Name))

	s.log.Info("Activity deleted",
		zap.String("activity_id", activityID),
		zap.String("name", activity.Name),
	)

	return nil
}

func (s *activityService) UpdateGetYourGuidePrice(ctx context.Context, userID uuid.UUID, activityID string, req *request.UpdateGetYourGuidePriceRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update competitor price validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.UpdateGetYourGuidePrice(ctx, id, req.GetYourGuidePrice)
	if err != nil {
		s.log.Error("Failed to update competitor price", zap.Error(err), zap.String("activity_id", activityID))
		return nil, fmt.Errorf("update competitor price %s: %w", activityID, err)
	}
	if activity == nil {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "getyourguide_price_updated",
		fmt.Sprintf("id=%s price=%d", activityID, req.GetYourGuidePrice))

	s.log.Info("Competitor price updated",
		zap.String("activity_id", activityID),
		zap.Int("getyourguide_price", req.GetYourGuidePrice),
	)

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) findActivity(ctx context.Context, activityID string) (*entity.Activity, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find activity", zap.Error(err), zap.String("activity_id", activityID))
		return nil, fmt.Errorf("find activity %s: %w", activityID, err)
	}
	if activity == nil {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}

	return activity, nil
}

func applyActivityUpdate(activity *entity.Activity, req *request.UpdateActivityRequest) {
	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Price != nil {
		activity.Price = *req.Price
	}
	if req.Currency != nil {
		activity.Currency = *req.Currency
	}
	if req.Image != nil {
		activity.Image = *req.Image
	}
	if req.Photos != nil {
		activity.Photos = req.Photos
	}
	if req.Category != nil {
		activity.Category = *req.Category
	}
	if req.IsActive != nil {
		activity.IsActive = *req.IsActive
	}
	if req.GetYourGuidePrice != nil {
		activity.GetYourGuidePrice = req.GetYourGuidePrice
	}
	if req.Availability != nil {
		activity.Availability = req.Availability
	}
	if req.Duration != nil {
		activity.Duration = req.Duration
	}
}
