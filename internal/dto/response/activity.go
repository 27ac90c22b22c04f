package response

import (
	"time"

	"marrakech-tours/internal/data/entity"
)

type ActivityResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             string    `json:"price"`
	Currency          string    `json:"currency"`
	Image             string    `json:"image"`
	Photos            []string  `json:"photos,omitempty"`
	Category          string    `json:"category"`
	IsActive          bool      `json:"isActive"`
	GetYourGuidePrice *int      `json:"getyourguidePrice,omitempty"`
	Availability      *string   `json:"availability,omitempty"`
	Duration          *string   `json:"duration,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type RatingResponse struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:                activity.ID.String(),
		Name:              activity.Name,
		Description:       activity.Description,
		Price:             activity.Price,
		Currency:          activity.Currency,
		Image:             activity.Image,
		Photos:            activity.Photos,
		Category:          activity.Category,
		IsActive:          activity.IsActive,
		GetYourGuidePrice: activity.GetYourGuidePrice,
		Availability:      activity.Availability,
		Duration:          activity.Duration,
		CreatedAt:         activity.CreatedAt,
		UpdatedAt:         activity.UpdatedAt,
	}
}

func ActivitiesToResponse(activities []*entity.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = ActivityToResponse(activity)
	}
	return responses
}
