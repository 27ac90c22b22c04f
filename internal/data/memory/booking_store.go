package memory

import (
	"context"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"

	"github.com/google/uuid"
)

type bookingStore struct {
	s *Store
}

func (st *bookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (st *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	booking, ok := st.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(booking), nil
}

func (st *bookingStore) FindByIDWithActivity(ctx context.Context, id uuid.UUID) (*entity.BookingWithActivity, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	booking, ok := st.s.bookings[id]
	if !ok {
		return nil, nil
	}

	result := &entity.BookingWithActivity{Booking: *copyBooking(booking)}
	if activity, ok := st.s.activities[booking.ActivityID]; ok {
		result.Activity = copyActivity(activity)
	}
	return result, nil
}

func (st *bookingStore) FindAllWithActivity(ctx context.Context) ([]*entity.BookingWithActivity, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var bookings []*entity.BookingWithActivity
	for _, booking := range st.s.bookings {
		result := &entity.BookingWithActivity{Booking: *copyBooking(booking)}
		if activity, ok := st.s.activities[booking.ActivityID]; ok {
			result.Activity = copyActivity(activity)
		}
		bookings = append(bookings, result)
	}
	sortByCreatedDesc(bookings, func(b *entity.BookingWithActivity) time.Time { return b.CreatedAt })
	return bookings, nil
}

func (st *bookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	booking, ok := st.s.bookings[id]
	if !ok {
		return nil, nil
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return copyBooking(booking), nil
}

func (st *bookingStore) UpdatePayment(ctx context.Context, id uuid.UUID, update repository.PaymentUpdate) (*entity.Booking, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	booking, ok := st.s.bookings[id]
	if !ok {
		return nil, nil
	}
	booking.PaymentStatus = update.PaymentStatus
	booking.PaidAmount = update.PaidAmount
	booking.PaymentMethod = update.PaymentMethod
	booking.DepositAmount = update.DepositAmount
	booking.UpdatedAt = time.Now()
	return copyBooking(booking), nil
}

func (st *bookingStore) SumPaidBetween(ctx context.Context, from, to time.Time) (int64, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var total int64
	for _, booking := range st.s.bookings {
		if booking.CreatedAt.Before(from) || !booking.CreatedAt.Before(to) {
			continue
		}
		if booking.PaymentStatus == entity.PaymentStatusDepositPaid ||
			booking.PaymentStatus == entity.PaymentStatusFullyPaid {
			total += int64(booking.PaidAmount)
		}
	}
	return total, nil
}

func (st *bookingStore) CountByActivity(ctx context.Context) (map[uuid.UUID]int64, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	counts := make(map[uuid.UUID]int64)
	for _, booking := range st.s.bookings {
		counts[booking.ActivityID]++
	}
	return counts, nil
}

func (st *bookingStore) CountByStatus(ctx context.Context) (*repository.StatusCounts, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	counts := &repository.StatusCounts{}
	for _, booking := range st.s.bookings {
		counts.Total++
		switch booking.Status {
		case entity.BookingStatusPending:
			counts.Pending++
		case entity.BookingStatusConfirmed:
			counts.Confirmed++
		default:
			counts.Completed++
		}
	}
	return counts, nil
}
