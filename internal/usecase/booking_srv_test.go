package usecase

import (
	"context"
	"testing"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/memory"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/dto/request"
	"marrakech-tours/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	repo := memory.NewRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	return NewService(repo, nil, "memory", config, zap.NewNop()), repo
}

func createTestActivity(t *testing.T, repo *repository.Repository, name, price string) *entity.Activity {
	t.Helper()

	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        name,
		Description: "test activity",
		Price:       price,
		Currency:    "MAD",
		Image:       "/img.jpg",
		Category:    "Adventure",
		IsActive:    true,
	}

	require.NoError(t, repo.Activity.Create(context.Background(), activity))
	return activity
}

func TestCreateBookingComputesTotal(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")

	resp, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 2,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "900", resp.TotalAmount)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
	assert.Equal(t, 0, resp.PaidAmount)

	require.NotNil(t, resp.Activity)
	assert.Equal(t, activity.Name, resp.Activity.Name)

	require.NotNil(t, resp.Notification)
	assert.Len(t, resp.Notification.Recipients, 3)
	assert.Contains(t, resp.Notification.CustomerMessage, "900 MAD")
}

func TestCreateBookingTruncatesPrice(t *testing.T) {
	svc, repo := newTestService(t)

	tests := []struct {
		price string
		want  string
	}{
		{"450 MAD per person", "900"},
		{"99.50", "198"},
		{"free", "0"},
	}

	for _, tt := range tests {
		activity := createTestActivity(t, repo, "Priced "+tt.price, tt.price)

		resp, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
			CustomerName:   "Marie Dupont",
			CustomerPhone:  "+33612345678",
			ActivityID:     activity.ID.String(),
			NumberOfPeople: 2,
			PreferredDate:  "2026-09-15",
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.TotalAmount, "price %q", tt.price)
	}
}

func TestCreateBookingUnknownActivity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     uuid.NewString(),
		NumberOfPeople: 2,
		PreferredDate:  "2026-09-15",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Ourika Valley Day Trip", "150")

	_, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 1,
		PreferredDate:  "next tuesday",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preferred date")
}

func TestUpdateStatus(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Essaouira Day Trip", "200")
	adminID := uuid.New()

	created, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 1,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	resp, err := svc.Booking.UpdateStatus(context.Background(), adminID, created.ID, &request.UpdateBookingStatusRequest{
		Status: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

	// Mutation is audit logged.
	logs, err := repo.AuditLog.FindRecent(context.Background(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "booking_status_updated", logs[0].Action)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Booking.UpdateStatus(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateBookingStatusRequest{
		Status: "confirmed",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// The payment panel is trusted as-is: amounts are stored exactly as the
// admin sent them, even when they disagree with the booking total.
func TestUpdatePaymentAcceptsClientAmounts(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")

	created, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 2,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	method := "cash"
	resp, err := svc.Booking.UpdatePayment(context.Background(), uuid.New(), created.ID, &request.UpdateBookingPaymentRequest{
		PaymentStatus: "fully_paid",
		PaidAmount:    999999,
		PaymentMethod: &method,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusFullyPaid, resp.PaymentStatus)
	assert.Equal(t, 999999, resp.PaidAmount)
}

func TestUpdatePaymentBuildsConfirmationLinks(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")

	created, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 2,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	method := "cash_deposit"
	resp, err := svc.Booking.UpdatePayment(context.Background(), uuid.New(), created.ID, &request.UpdateBookingPaymentRequest{
		PaymentStatus: "deposit_paid",
		PaidAmount:    270,
		PaymentMethod: &method,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Notification)
	assert.Contains(t, resp.Notification.Message, "ACOMPTE")
	assert.Len(t, resp.Notification.WhatsappLinks, 3)
}

func TestUpdatePaymentUnpaidHasNoNotification(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Ouzoud Waterfalls Day Trip", "200")

	created, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 1,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	resp, err := svc.Booking.UpdatePayment(context.Background(), uuid.New(), created.ID, &request.UpdateBookingPaymentRequest{
		PaymentStatus: "unpaid",
		PaidAmount:    0,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Notification)
}

func TestListBookingsJoinsActivity(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Hot Air Balloon Ride Marrakech", "1100")

	_, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 3,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	bookings, err := svc.Booking.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	require.NotNil(t, bookings[0].Activity)
	assert.Equal(t, "Hot Air Balloon Ride Marrakech", bookings[0].Activity.Name)
	assert.Equal(t, "3300", bookings[0].TotalAmount)
}
