package usecase

import (
	"context"
	"testing"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPaidBooking(t *testing.T, repo *repository.Repository, activityID uuid.UUID, paid int, status entity.PaymentStatus, createdAt time.Time) {
	t.Helper()

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activityID,
		NumberOfPeople: 1,
		PreferredDate:  createdAt.AddDate(0, 0, 7),
		Status:         entity.BookingStatusConfirmed,
		TotalAmount:    "450",
		PaymentStatus:  status,
		PaidAmount:     paid,
	}

	require.NoError(t, repo.Booking.Create(context.Background(), booking))
}

func TestEarningsByMonth(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")

	now := time.Now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := currentStart.Add(-time.Hour)

	createPaidBooking(t, repo, activity.ID, 450, entity.PaymentStatusFullyPaid, now)
	createPaidBooking(t, repo, activity.ID, 135, entity.PaymentStatusDepositPaid, now)
	createPaidBooking(t, repo, activity.ID, 300, entity.PaymentStatusFullyPaid, lastMonth)

	// Unpaid bookings never count as earned revenue.
	createPaidBooking(t, repo, activity.ID, 100, entity.PaymentStatusUnpaid, now)

	earnings, err := svc.Analytics.Earnings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(585), earnings.CurrentMonth)
	assert.Equal(t, int64(300), earnings.LastMonth)
	assert.Equal(t, "MAD", earnings.Currency)
}

func TestBookingStats(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Ourika Valley Day Trip", "150")

	created, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Marie Dupont",
		CustomerPhone:  "+33612345678",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 1,
		PreferredDate:  "2026-09-15",
	})
	require.NoError(t, err)

	_, err = svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Jean Dupont",
		CustomerPhone:  "+33612345679",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 2,
		PreferredDate:  "2026-09-16",
	})
	require.NoError(t, err)

	finished, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:   "Fatima Alaoui",
		CustomerPhone:  "+212661234567",
		ActivityID:     activity.ID.String(),
		NumberOfPeople: 4,
		PreferredDate:  "2026-09-17",
	})
	require.NoError(t, err)

	_, err = svc.Booking.UpdateStatus(context.Background(), uuid.New(), created.ID, &request.UpdateBookingStatusRequest{
		Status: "confirmed",
	})
	require.NoError(t, err)

	_, err = svc.Booking.UpdateStatus(context.Background(), uuid.New(), finished.ID, &request.UpdateBookingStatusRequest{
		Status: "completed",
	})
	require.NoError(t, err)

	stats, err := svc.Analytics.BookingStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Confirmed)
	assert.Equal(t, int64(1), stats.Completed)
}

func TestActivityStatsOrderedByBookings(t *testing.T) {
	svc, repo := newTestService(t)
	quiet := createTestActivity(t, repo, "Essaouira Day Trip", "200")
	popular := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")

	retired := createTestActivity(t, repo, "Old Medina Walk", "100")
	retired.IsActive = false
	require.NoError(t, repo.Activity.Update(context.Background(), retired))

	for i := 0; i < 3; i++ {
		_, err := svc.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
			CustomerName:   "Marie Dupont",
			CustomerPhone:  "+33612345678",
			ActivityID:     popular.ID.String(),
			NumberOfPeople: 1,
			PreferredDate:  "2026-09-15",
		})
		require.NoError(t, err)
	}

	stats, err := svc.Analytics.ActivityStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, popular.ID.String(), stats[0].ActivityID)
	assert.Equal(t, int64(3), stats[0].BookingCount)
	assert.Equal(t, quiet.ID.String(), stats[1].ActivityID)
	assert.Equal(t, int64(0), stats[1].BookingCount)

	// Deactivated activities never appear on the dashboard.
	for _, entry := range stats {
		assert.NotEqual(t, retired.ID.String(), entry.ActivityID)
	}
}

func TestPriceComparison(t *testing.T) {
	svc, repo := newTestService(t)

	activity := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")
	gyg := 600
	activity.GetYourGuidePrice = &gyg
	require.NoError(t, repo.Activity.Update(context.Background(), activity))

	createTestActivity(t, repo, "Untracked Trip", "150")

	comparison, err := svc.Analytics.PriceComparison(context.Background())
	require.NoError(t, err)
	require.Len(t, comparison, 2)

	var tracked, untracked int
	for i, entry := range comparison {
		if entry.Name == "Agafay Desert Combo Experience" {
			tracked = i
		} else {
			untracked = i
		}
	}

	require.NotNil(t, comparison[tracked].Advantage)
	assert.Equal(t, 150, *comparison[tracked].Advantage)
	assert.Nil(t, comparison[untracked].Advantage)
}

func TestHealthReportsStorageMode(t *testing.T) {
	svc, repo := newTestService(t)
	createTestActivity(t, repo, "Ourika Valley Day Trip", "150")

	health, err := svc.Analytics.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "memory", health.Storage)
	assert.Equal(t, int64(1), health.Activities)
}

func TestRecentAuditLogs(t *testing.T) {
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

	_, err = svc.Booking.UpdateStatus(context.Background(), adminID, created.ID, &request.UpdateBookingStatusRequest{
		Status: "confirmed",
	})
	require.NoError(t, err)

	logs, err := svc.Analytics.RecentAuditLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.Equal(t, "booking_status_updated", logs[0].Action)
	assert.Equal(t, adminID.String(), logs[0].UserID)
}
