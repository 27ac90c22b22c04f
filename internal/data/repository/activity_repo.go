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

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	FindActive(ctx context.Context) ([]*entity.Activity, error)
	FindAll(ctx context.Context) ([]*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	UpdateGetYourGuidePrice(ctx context.Context, id uuid.UUID, price int) (*entity.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

const activityColumns = `id, name, description, price, currency, image, photos,
       category, is_active, getyourguide_price, availability, duration,
       created_at, updated_at`

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var activity entity.Activity
	err := row.Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Price,
		&activity.Currency,
		&activity.Image,
		&activity.Photos,
		&activity.Category,
		&activity.IsActive,
		&activity.GetYourGuidePrice,
		&activity.Availability,
		&activity.Duration,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, name, description, price, currency, image, photos,
		                        category, is_active, getyourguide_price, availability,
		                        duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Price,
		activity.Currency,
		activity.Image,
		activity.Photos,
		activity.Category,
		activity.IsActive,
		activity.GetYourGuidePrice,
		activity.Availability,
		activity.Duration,
		activity.CreatedAt,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("name", activity.Name),
		)
		return fmt.Errorf("create activity %s: %w", activity.Name, err)
	}

	return nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	activity, err := scanActivity(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return activity, nil
}

func (r *activityRepository) FindActive(ctx context.Context) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE is_active ORDER BY created_at`
	return r.findMany(ctx, query)
}

func (r *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY created_at`
	return r.findMany(ctx, query)
}

func (r *activityRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Activity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query activities", zap.Error(err))
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, description = $3, price = $4, currency = $5, image = $6,
		    photos = $7, category = $8, is_active = $9, getyourguide_price = $10,
		    availability = $11, duration = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Price,
		activity.Currency,
		activity.Image,
		activity.Photos,
		activity.Category,
		activity.IsActive,
		activity.GetYourGuidePrice,
		activity.Availability,
		activity.Duration,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("update activity %s: %w", activity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}

	return nil
}

func (r *activityRepository) UpdateGetYourGuidePrice(ctx context.Context, id uuid.UUID, price int) (*entity.Activity, error) {
	query := `
		UPDATE activities
		SET getyourguide_price = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + activityColumns

	activity, err := scanActivity(r.db.QueryRow(ctx, query, id, price))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update GetYourGuide price",
			zap.Error(err),
			zap.String("activity_id", id.String()),
			zap.Int("price", price),
		)
		return nil, fmt.Errorf("update getyourguide price %s: %w", id.String(), err)
	}

	return activity, nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return fmt.Errorf("delete activity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", id.String())
	}

	r.log.Info("Activity deleted", zap.String("activity_id", id.String()))
	return nil
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		r.log.Error("Failed to count activities", zap.Error(err))
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return count, nil
}
