package adaptor

import (
	"marrakech-tours/internal/usecase"
	"marrakech-tours/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Activity  *ActivityHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Analytics *AnalyticsHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config, log),
		Activity:  NewActivityHandler(service.Activity, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Review:    NewReviewHandler(service.Review, log),
		Analytics: NewAnalyticsHandler(service.Analytics, log),
	}
}
