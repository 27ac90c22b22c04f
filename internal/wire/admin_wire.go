package wire

import (
	"time"

	"marrakech-tours/internal/adaptor"
	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/pkg/middleware"
	"marrakech-tours/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	adminLimiter := middleware.NewRateLimiter(100, time.Minute, config.App.Debug)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminLimiter.Handler)
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// Admin or above.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleAdmin, log))

			r.Get("/bookings", handler.Booking.ListBookings)
			r.Patch("/bookings/{id}/status", handler.Booking.UpdateStatus)
			r.Patch("/bookings/{id}/payment", handler.Booking.UpdatePayment)

			r.Get("/activities", handler.Activity.ListAll)
			r.Post("/activities", handler.Activity.CreateActivity)
			r.Put("/activities/{id}", handler.Activity.UpdateActivity)
			r.Delete("/activities/{id}", handler.Activity.DeleteActivity)

			r.Get("/reviews", handler.Review.ListAll)
			r.Patch("/reviews/{id}/approval", handler.Review.UpdateApproval)

			r.Get("/analytics/activities", handler.Analytics.ActivityStats)
			r.Get("/analytics/bookings", handler.Analytics.BookingStats)

			r.Get("/whatsapp-contacts", handler.Analytics.WhatsAppContacts)
		})

		// Superadmin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleSuperadmin, log))

			r.Get("/audit-logs", handler.Analytics.AuditLogs)
			r.Get("/analytics/earnings", handler.Analytics.Earnings)
			r.Get("/getyourguide/comparison", handler.Analytics.PriceComparison)
			r.Patch("/activities/{id}/getyourguide-price", handler.Activity.UpdateGetYourGuidePrice)
			r.Get("/system-health", handler.Analytics.SystemHealth)
		})
	})
}
