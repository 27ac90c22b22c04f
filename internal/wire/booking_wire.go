package wire

import (
	"marrakech-tours/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/api/bookings", bookingHandler.CreateBooking)
}
