package repository

import (
	"context"
	"fmt"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindApproved(ctx context.Context, activityID *uuid.UUID) ([]*entity.Review, error)
	FindAll(ctx context.Context) ([]*entity.Review, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Review, error)
	RatingStats(ctx context.Context, activityID uuid.UUID) (avg float64, count int64, err error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, customer_name, customer_email, activity_id, rating,
       title, comment, verified, approved, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.CustomerName,
		&review.CustomerEmail,
		&review.ActivityID,
		&review.Rating,
		&review.Title,
		&review.Comment,
		&review.Verified,
		&review.Approved,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, customer_name, customer_email, activity_id, rating,
		                     title, comment, verified, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.CustomerName,
		review.CustomerEmail,
		review.ActivityID,
		review.Rating,
		review.Title,
		review.Comment,
		review.Verified,
		review.Approved,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("activity_id", review.ActivityID.String()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindApproved(ctx context.Context, activityID *uuid.UUID) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE approved ORDER BY created_at DESC`
	args := []any{}
	if activityID != nil {
		query = `SELECT ` + reviewColumns + ` FROM reviews WHERE approved AND activity_id = $1 ORDER BY created_at DESC`
		args = append(args, *activityID)
	}

	return r.findMany(ctx, query, args...)
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC`
	return r.findMany(ctx, query)
}

func (r *reviewRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET approved = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reviewColumns

	review, err := scanReview(r.db.QueryRow(ctx, query, id, approved))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update review approval",
			zap.Error(err),
			zap.String("review_id", id.String()),
			zap.Bool("approved", approved),
		)
		return nil, fmt.Errorf("update review %s approval: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) RatingStats(ctx context.Context, activityID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE activity_id = $1 AND approved
	`

	var avg float64
	var count int64
	if err := r.db.QueryRow(ctx, query, activityID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to compute rating stats",
			zap.Error(err),
			zap.String("activity_id", activityID.String()),
		)
		return 0, 0, fmt.Errorf("rating stats for %s: %w", activityID.String(), err)
	}

	return avg, count, nil
}
