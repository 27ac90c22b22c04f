package response

import (
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/notification"
)

type BookingResponse struct {
	ID               string                `json:"id"`
	CustomerName     string                `json:"customerName"`
	CustomerPhone    string                `json:"customerPhone"`
	CustomerEmail    *string               `json:"customerEmail,omitempty"`
	ActivityID       string                `json:"activityId"`
	NumberOfPeople   int                   `json:"numberOfPeople"`
	PreferredDate    time.Time             `json:"preferredDate"`
	ParticipantNames []string              `json:"participantNames,omitempty"`
	Notes            *string               `json:"notes,omitempty"`
	Status           entity.BookingStatus  `json:"status"`
	TotalAmount      string                `json:"totalAmount"`
	PaymentStatus    entity.PaymentStatus  `json:"paymentStatus"`
	PaymentMethod    *entity.PaymentMethod `json:"paymentMethod,omitempty"`
	PaidAmount       int                   `json:"paidAmount"`
	DepositAmount    *int                  `json:"depositAmount,omitempty"`
	Activity         *ActivityResponse     `json:"activity,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// BookingNotificationResponse carries the persisted booking plus the
// wa.me links staff and customer use to continue the conversation.
type BookingNotificationResponse struct {
	BookingResponse
	Notification *notification.Payload `json:"notification,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:               booking.ID.String(),
		CustomerName:     booking.CustomerName,
		CustomerPhone:    booking.CustomerPhone,
		CustomerEmail:    booking.CustomerEmail,
		ActivityID:       booking.ActivityID.String(),
		NumberOfPeople:   booking.NumberOfPeople,
		PreferredDate:    booking.PreferredDate,
		ParticipantNames: booking.ParticipantNames,
		Notes:            booking.Notes,
		Status:           booking.Status,
		TotalAmount:      booking.TotalAmount,
		PaymentStatus:    booking.PaymentStatus,
		PaymentMethod:    booking.PaymentMethod,
		PaidAmount:       booking.PaidAmount,
		DepositAmount:    booking.DepositAmount,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}

func BookingWithActivityToResponse(booking *entity.BookingWithActivity) BookingResponse {
	resp := BookingToResponse(&booking.Booking)
	if booking.Activity != nil {
		activity := ActivityToResponse(booking.Activity)
		resp.Activity = &activity
	}
	return resp
}

func BookingsWithActivityToResponse(bookings []*entity.BookingWithActivity) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingWithActivityToResponse(booking)
	}
	return responses
}
