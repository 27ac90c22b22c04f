package repository

import (
	"context"
	"fmt"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PaymentUpdate carries the admin payment PATCH fields. Values are applied
// as sent; consistency with the booking total is not enforced here.
type PaymentUpdate struct {
	PaymentStatus entity.PaymentStatus
	PaidAmount    int
	PaymentMethod *entity.PaymentMethod
	DepositAmount *int
}

// StatusCounts aggregates bookings per lifecycle state. Completed absorbs
// every state past confirmed, so the three buckets always sum to Total.
type StatusCounts struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Completed int64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByIDWithActivity(ctx context.Context, id uuid.UUID) (*entity.BookingWithActivity, error)
	FindAllWithActivity(ctx context.Context) ([]*entity.BookingWithActivity, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (*entity.Booking, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, update PaymentUpdate) (*entity.Booking, error)

	// Aggregation queries for the dashboards
	SumPaidBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByActivity(ctx context.Context) (map[uuid.UUID]int64, error)
	CountByStatus(ctx context.Context) (*StatusCounts, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_name, customer_phone, customer_email, activity_id,
       number_of_people, preferred_date, participant_names, notes, status,
       total_amount, payment_status, payment_method, paid_amount, deposit_amount,
       created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.ActivityID,
		&booking.NumberOfPeople,
		&booking.PreferredDate,
		&booking.ParticipantNames,
		&booking.Notes,
		&booking.Status,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.PaidAmount,
		&booking.DepositAmount,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_name, customer_phone, customer_email,
		                      activity_id, number_of_people, preferred_date,
		                      participant_names, notes, status, total_amount,
		                      payment_status, payment_method, paid_amount,
		                      deposit_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.CustomerEmail,
		booking.ActivityID,
		booking.NumberOfPeople,
		booking.PreferredDate,
		booking.ParticipantNames,
		booking.Notes,
		booking.Status,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.PaidAmount,
		booking.DepositAmount,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer", booking.CustomerName),
			zap.String("activity_id", booking.ActivityID.String()),
		)
		return fmt.Errorf("create booking for %s: %w", booking.CustomerName, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByIDWithActivity(ctx context.Context, id uuid.UUID) (*entity.BookingWithActivity, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, err
	}

	result := &entity.BookingWithActivity{Booking: *booking}

	activity, err := scanActivity(r.db.QueryRow(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1`, booking.ActivityID))
	if err != nil && err != pgx.ErrNoRows {
		r.log.Error("Failed to join booking activity",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("join booking activity %s: %w", id.String(), err)
	}
	if err == nil {
		result.Activity = activity
	}

	return result, nil
}

func (r *bookingRepository) FindAllWithActivity(ctx context.Context) ([]*entity.BookingWithActivity, error) {
	query := `
		SELECT b.id, b.customer_name, b.customer_phone, b.customer_email, b.activity_id,
		       b.number_of_people, b.preferred_date, b.participant_names, b.notes,
		       b.status, b.total_amount, b.payment_status, b.payment_method,
		       b.paid_amount, b.deposit_amount, b.created_at, b.updated_at,
		       a.id, a.name, a.description, a.price, a.currency, a.image, a.photos,
		       a.category, a.is_active, a.getyourguide_price, a.availability,
		       a.duration, a.created_at, a.updated_at
		FROM bookings b
		LEFT JOIN activities a ON a.id = b.activity_id
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingWithActivity
	for rows.Next() {
		var booking entity.Booking
		var activity entity.Activity
		var activityID *uuid.UUID
		var name, description, price, currency, image, category *string
		var photos []string
		var isActive *bool
		var gygPrice *int
		var availability, duration *string
		var actCreated, actUpdated *time.Time

		err := rows.Scan(
			&booking.ID,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.CustomerEmail,
			&booking.ActivityID,
			&booking.NumberOfPeople,
			&booking.PreferredDate,
			&booking.ParticipantNames,
			&booking.Notes,
			&booking.Status,
			&booking.TotalAmount,
			&booking.PaymentStatus,
			&booking.PaymentMethod,
			&booking.PaidAmount,
			&booking.DepositAmount,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&activityID,
			&name,
			&description,
			&price,
			&currency,
			&image,
			&photos,
			&category,
			&isActive,
			&gygPrice,
			&availability,
			&duration,
			&actCreated,
			&actUpdated,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		result := &entity.BookingWithActivity{Booking: booking}
		if activityID != nil {
			activity.ID = *activityID
			activity.Name = *name
			activity.Description = *description
			activity.Price = *price
			activity.Currency = *currency
			activity.Image = *image
			activity.Photos = photos
			activity.Category = *category
			activity.IsActive = *isActive
			activity.GetYourGuidePrice = gygPrice
			activity.Availability = availability
			activity.Duration = duration
			activity.CreatedAt = *actCreated
			activity.UpdatedAt = *actUpdated
			result.Activity = &activity
		}
		bookings = append(bookings, result)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, status))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	return booking, nil
}

func (r *bookingRepository) UpdatePayment(ctx context.Context, id uuid.UUID, update PaymentUpdate) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET payment_status = $2, paid_amount = $3, payment_method = $4,
		    deposit_amount = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id,
		update.PaymentStatus,
		update.PaidAmount,
		update.PaymentMethod,
		update.DepositAmount,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking payment",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("payment_status", string(update.PaymentStatus)),
		)
		return nil, fmt.Errorf("update booking %s payment: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(paid_amount), 0)
		FROM bookings
		WHERE created_at >= $1 AND created_at < $2
		  AND payment_status IN ('deposit_paid', 'fully_paid')
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to sum paid amounts", zap.Error(err))
		return 0, fmt.Errorf("sum paid amounts: %w", err)
	}

	return total, nil
}

func (r *bookingRepository) CountByActivity(ctx context.Context) (map[uuid.UUID]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT activity_id, COUNT(*) FROM bookings GROUP BY activity_id`)
	if err != nil {
		r.log.Error("Failed to count bookings by activity", zap.Error(err))
		return nil, fmt.Errorf("count bookings by activity: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var activityID uuid.UUID
		var count int64
		if err := rows.Scan(&activityID, &count); err != nil {
			return nil, fmt.Errorf("scan booking count row: %w", err)
		}
		counts[activityID] = count
	}

	return counts, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (*StatusCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'confirmed')
		FROM bookings
	`

	var counts StatusCounts
	if err := r.db.QueryRow(ctx, query).Scan(&counts.Total, &counts.Pending, &counts.Confirmed); err != nil {
		r.log.Error("Failed to count bookings by status", zap.Error(err))
		return nil, fmt.Errorf("count bookings by status: %w", err)
	}
	counts.Completed = counts.Total - counts.Pending - counts.Confirmed

	return &counts, nil
}
