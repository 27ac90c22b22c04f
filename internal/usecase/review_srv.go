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

type ReviewService interface {
	// Public
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListApproved(ctx context.Context, activityID string) ([]response.ReviewResponse, error)

	// Admin moderation
	ListAll(ctx context.Context) ([]response.ReviewResponse, error)
	UpdateApproval(ctx context.Context, userID uuid.UUID, reviewID string, req *request.UpdateReviewApprovalRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", req.ActivityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, activityID)
	if err != nil {
		s.log.Error("Failed to find activity", zap.Error(err), zap.String("activity_id", req.ActivityID))
		return nil, fmt.Errorf("find activity %s: %w", req.ActivityID, err)
	}
	if activity == nil {
		return nil, fmt.Errorf("activity %s not found", req.ActivityID)
	}

	// Every review waits for moderation before it counts anywhere.
	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ActivityID:    activityID,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
		Verified:      false,
		Approved:      false,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("activity_id", req.ActivityID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("activity_id", req.ActivityID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListApproved(ctx context.Context, activityID string) ([]response.ReviewResponse, error) {
	var filter *uuid.UUID
	if activityID != "" {
		id, err := uuid.Parse(activityID)
		if err != nil {
			return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
		}
		filter = &id
	}

	reviews, err := s.repo.Review.FindApproved(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list approved reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ListAll(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) UpdateApproval(ctx context.Context, userID uuid.UUID, reviewID string, req *request.UpdateReviewApprovalRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review approval validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.UpdateApproval(ctx, id, *req.Approved)
	if err != nil {
		s.log.Error("Failed to update review approval",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "review_approval_updated",
		fmt.Sprintf("id=%s approved=%t", reviewID, *req.Approved))

	s.log.Info("Review approval updated",
		zap.String("review_id", reviewID),
		zap.Bool("approved", *req.Approved),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}
