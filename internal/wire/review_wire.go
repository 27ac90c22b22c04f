package wire

import (
	"marrakech-tours/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Get("/api/reviews", reviewHandler.ListApproved)
	r.Post("/api/reviews", reviewHandler.CreateReview)
}
