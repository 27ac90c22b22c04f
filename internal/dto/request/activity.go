package request

type CreateActivityRequest struct {
	Name              string   `json:"name" validate:"required,min=1"`
	Description       string   `json:"description" validate:"required,min=1"`
	Price             string   `json:"price" validate:"required,min=1"`
	Currency          string   `json:"currency,omitempty"`
	Image             string   `json:"image" validate:"required,min=1"`
	Photos            []string `json:"photos,omitempty"`
	Category          string   `json:"category" validate:"required,min=1"`
	IsActive          *bool    `json:"isActive,omitempty"`
	GetYourGuidePrice *int     `json:"getyourguidePrice,omitempty"`
	Availability      *string  `json:"availability,omitempty"`
	Duration          *string  `json:"duration,omitempty"`
}

// UpdateActivityRequest is a partial update; nil fields keep their value.
type UpdateActivityRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price             *string  `json:"price,omitempty" validate:"omitempty,min=1"`
	Currency          *string  `json:"currency,omitempty"`
	Image             *string  `json:"image,omitempty"`
	Photos            []string `json:"photos,omitempty"`
	Category          *string  `json:"category,omitempty"`
	IsActive          *bool    `json:"isActive,omitempty"`
	GetYourGuidePrice *int     `json:"getyourguidePrice,omitempty"`
	Availability      *string  `json:"availability,omitempty"`
	Duration          *string  `json:"duration,omitempty"`
}

type UpdateGetYourGuidePriceRequest struct {
	GetYourGuidePrice int `json:"getyourguidePrice" validate:"required,min=1"`
}
