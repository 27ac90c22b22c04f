package wire

import (
	"marrakech-tours/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireActivity(r chi.Router, activityHandler *adaptor.ActivityHandler) {
	r.Get("/api/activities", activityHandler.ListActive)
	r.Get("/api/activities/{id}", activityHandler.GetActivity)
	r.Get("/api/activities/{id}/rating", activityHandler.GetRating)
}
