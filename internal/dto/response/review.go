package response

import (
	"time"

	"marrakech-tours/internal/data/entity"
)

type ReviewResponse struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	ActivityID    string            `json:"activityId"`
	Rating        int               `json:"rating"`
	Title         string            `json:"title"`
	Comment       string            `json:"comment"`
	Verified      bool              `json:"verified"`
	Approved      bool              `json:"approved"`
	Activity      *ActivityResponse `json:"activity,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID.String(),
		CustomerName:  review.CustomerName,
		CustomerEmail: review.CustomerEmail,
		ActivityID:    review.ActivityID.String(),
		Rating:        review.Rating,
		Title:         review.Title,
		Comment:       review.Comment,
		Verified:      review.Verified,
		Approved:      review.Approved,
		CreatedAt:     review.CreatedAt,
		UpdatedAt:     review.UpdatedAt,
	}
}

func ReviewWithActivityToResponse(review *entity.ReviewWithActivity) ReviewResponse {
	resp := ReviewToResponse(&review.Review)
	if review.Activity != nil {
		activity := ActivityToResponse(review.Activity)
		resp.Activity = &activity
	}
	return resp
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}

func ReviewsWithActivityToResponse(reviews []*entity.ReviewWithActivity) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewWithActivityToResponse(review)
	}
	return responses
}
