package usecase

import (
	"context"
	"testing"

	"marrakech-tours/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewStartsUnapproved(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Essaouira Day Trip", "200")

	resp, err := svc.Review.CreateReview(context.Background(), &request.CreateReviewRequest{
		CustomerName:  "Marie Dupont",
		CustomerEmail: "marie@example.com",
		ActivityID:    activity.ID.String(),
		Rating:        5,
		Title:         "Wonderful day",
		Comment:       "The ramparts and the seafood were unforgettable.",
	})
	require.NoError(t, err)

	assert.False(t, resp.Approved)
	assert.False(t, resp.Verified)
}

func TestCreateReviewUnknownActivity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Review.CreateReview(context.Background(), &request.CreateReviewRequest{
		CustomerName:  "Marie Dupont",
		CustomerEmail: "marie@example.com",
		ActivityID:    uuid.NewString(),
		Rating:        4,
		Title:         "Nice",
		Comment:       "Great trip.",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRatingCountsOnlyApprovedReviews(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Ourika Valley Day Trip", "150")
	adminID := uuid.New()

	submit := func(rating int) string {
		resp, err := svc.Review.CreateReview(context.Background(), &request.CreateReviewRequest{
			CustomerName:  "Marie Dupont",
			CustomerEmail: "marie@example.com",
			ActivityID:    activity.ID.String(),
			Rating:        rating,
			Title:         "Review",
			Comment:       "Comment",
		})
		require.NoError(t, err)
		return resp.ID
	}

	fiveStar := submit(5)
	threeStar := submit(3)

	// Nothing approved yet: the average is zero.
	rating, err := svc.Activity.GetRating(context.Background(), activity.ID.String())
	require.NoError(t, err)
	assert.Equal(t, float64(0), rating.AverageRating)
	assert.Equal(t, int64(0), rating.TotalReviews)

	approved := true
	_, err = svc.Review.UpdateApproval(context.Background(), adminID, fiveStar, &request.UpdateReviewApprovalRequest{Approved: &approved})
	require.NoError(t, err)

	rating, err = svc.Activity.GetRating(context.Background(), activity.ID.String())
	require.NoError(t, err)
	assert.Equal(t, float64(5), rating.AverageRating)
	assert.Equal(t, int64(1), rating.TotalReviews)

	_, err = svc.Review.UpdateApproval(context.Background(), adminID, threeStar, &request.UpdateReviewApprovalRequest{Approved: &approved})
	require.NoError(t, err)

	rating, err = svc.Activity.GetRating(context.Background(), activity.ID.String())
	require.NoError(t, err)
	assert.Equal(t, float64(4), rating.AverageRating)
	assert.Equal(t, int64(2), rating.TotalReviews)
}

func TestListApprovedFiltersByActivity(t *testing.T) {
	svc, repo := newTestService(t)
	first := createTestActivity(t, repo, "Agafay Desert Combo Experience", "450")
	second := createTestActivity(t, repo, "Ouzoud Waterfalls Day Trip", "200")
	adminID := uuid.New()

	approved := true
	for _, activityID := range []string{first.ID.String(), second.ID.String()} {
		resp, err := svc.Review.CreateReview(context.Background(), &request.CreateReviewRequest{
			CustomerName:  "Marie Dupont",
			CustomerEmail: "marie@example.com",
			ActivityID:    activityID,
			Rating:        5,
			Title:         "Review",
			Comment:       "Comment",
		})
		require.NoError(t, err)

		_, err = svc.Review.UpdateApproval(context.Background(), adminID, resp.ID, &request.UpdateReviewApprovalRequest{Approved: &approved})
		require.NoError(t, err)
	}

	all, err := svc.Review.ListApproved(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.Review.ListApproved(context.Background(), first.ID.String())
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID.String(), filtered[0].ActivityID)
}

func TestUpdateApprovalNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	approved := true
	_, err := svc.Review.UpdateApproval(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateReviewApprovalRequest{Approved: &approved})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRevokeApprovalRemovesFromAverage(t *testing.T) {
	svc, repo := newTestService(t)
	activity := createTestActivity(t, repo, "Hot Air Balloon Ride Marrakech", "1100")
	adminID := uuid.New()

	resp, err := svc.Review.CreateReview(context.Background(), &request.CreateReviewRequest{
		CustomerName:  "Marie Dupont",
		CustomerEmail: "marie@example.com",
		ActivityID:    activity.ID.String(),
		Rating:        2,
		Title:         "Too windy",
		Comment:       "The flight was cancelled twice.",
	})
	require.NoError(t, err)

	approved := true
	_, err = svc.Review.UpdateApproval(context.Background(), adminID, resp.ID, &request.UpdateReviewApprovalRequest{Approved: &approved})
	require.NoError(t, err)

	revoked := false
	_, err = svc.Review.UpdateApproval(context.Background(), adminID, resp.ID, &request.UpdateReviewApprovalRequest{Approved: &revoked})
	require.NoError(t, err)

	rating, err := svc.Activity.GetRating(context.Background(), activity.ID.String())
	require.NoError(t, err)
	assert.Equal(t, float64(0), rating.AverageRating)
	assert.Equal(t, int64(0), rating.TotalReviews)
}
