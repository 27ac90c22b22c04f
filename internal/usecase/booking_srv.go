package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/dto/request"
	"marrakech-tours/internal/dto/response"
	"marrakech-tours/internal/notification"
	"marrakech-tours/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public booking flow
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingNotificationResponse, error)

	// Admin management
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	UpdatePayment(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateBookingPaymentRequest) (*response.BookingNotificationResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingNotificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", req.ActivityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, activityID)
	if err != nil {
		s.log.Error("Failed to find activity", zap.Error(err), zap.String("activity_id", req.ActivityID))
		return nil, fmt.Errorf("find activity %s: %w", req.ActivityID, err)
	}
	if activity == nil {
		return nil, fmt.Errorf("activity %s not found", req.ActivityID)
	}

	preferredDate, err := parsePreferredDate(req.PreferredDate)
	if err != nil {
		return nil, fmt.Errorf("invalid preferred date %q", req.PreferredDate)
	}

	// Price snapshot: the catalog stores prices as strings, and the total
	// keeps the leading-integer truncation the storefront always had.
	unitPrice := utils.ParseLeadingInt(activity.Price)
	totalAmount := unitPrice * req.NumberOfPeople

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		ActivityID:       activityID,
		NumberOfPeople:   req.NumberOfPeople,
		PreferredDate:    preferredDate,
		ParticipantNames: req.ParticipantNames,
		Notes:            req.Notes,
		Status:           entity.BookingStatusPending,
		TotalAmount:      strconv.Itoa(totalAmount),
		PaymentStatus:    entity.PaymentStatusUnpaid,
		PaidAmount:       0,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("activity_id", req.ActivityID),
			zap.String("customer", req.CustomerName),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("activity", activity.Name),
		zap.Int("people", booking.NumberOfPeople),
		zap.String("total_amount", booking.TotalAmount),
	)

	payload := notification.BookingNotification(s.notificationData(booking, activity))

	resp := response.BookingToResponse(booking)
	activityResp := response.ActivityToResponse(activity)
	resp.Activity = &activityResp

	return &response.BookingNotificationResponse{
		BookingResponse: resp,
		Notification:    &payload,
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAllWithActivity(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsWithActivityToResponse(bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatus(req.Status))
	if err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "booking_status_updated",
		fmt.Sprintf("id=%s status=%s", bookingID, req.Status))

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdatePayment(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateBookingPaymentRequest) (*response.BookingNotificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	existing, err := s.repo.Booking.FindByIDWithActivity(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Amounts come from the admin dashboard as entered; they are not
	// reconciled against the total here.
	if req.PaidAmount > utils.ParseLeadingInt(existing.TotalAmount) {
		s.log.Warn("Paid amount exceeds booking total",
			zap.String("booking_id", bookingID),
			zap.Int("paid_amount", req.PaidAmount),
			zap.String("total_amount", existing.TotalAmount),
		)
	}

	update := repository.PaymentUpdate{
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
		PaidAmount:    req.PaidAmount,
		DepositAmount: req.DepositAmount,
	}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		update.PaymentMethod = &method
	}

	booking, err := s.repo.Booking.UpdatePayment(ctx, id, update)
	if err != nil {
		s.log.Error("Failed to update booking payment",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking payment %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	recordAudit(ctx, s.repo.AuditLog, s.log, userID, "booking_payment_updated",
		fmt.Sprintf("id=%s paymentStatus=%s paidAmount=%d", bookingID, req.PaymentStatus, req.PaidAmount))

	s.log.Info("Booking payment updated",
		zap.String("booking_id", bookingID),
		zap.String("payment_status", req.PaymentStatus),
		zap.Int("paid_amount", req.PaidAmount),
	)

	result := &response.BookingNotificationResponse{
		BookingResponse: response.BookingToResponse(booking),
	}
	if existing.Activity != nil {
		activityResp := response.ActivityToResponse(existing.Activity)
		result.Activity = &activityResp
	}

	// Payment confirmation links only once money actually changed hands.
	if booking.PaymentStatus == entity.PaymentStatusDepositPaid ||
		booking.PaymentStatus == entity.PaymentStatusFullyPaid {
		paymentType := "deposit"
		if booking.PaymentStatus == entity.PaymentStatusFullyPaid {
			paymentType = "full"
		}

		payload := notification.PaymentConfirmation(s.notificationData(booking, existing.Activity), paymentType)
		result.Notification = &payload
	}

	return result, nil
}

func (s *bookingService) notificationData(booking *entity.Booking, activity *entity.Activity) notification.BookingData {
	data := notification.BookingData{
		BookingID:        booking.ID.String(),
		CustomerName:     booking.CustomerName,
		CustomerPhone:    booking.CustomerPhone,
		NumberOfPeople:   booking.NumberOfPeople,
		PreferredDate:    booking.PreferredDate,
		ParticipantNames: booking.ParticipantNames,
		TotalAmount:      utils.ParseLeadingInt(booking.TotalAmount),
		PaymentStatus:    string(booking.PaymentStatus),
		Status:           string(booking.Status),
	}
	if activity != nil {
		data.ActivityName = activity.Name
	}
	if booking.PaymentMethod != nil {
		data.PaymentMethod = string(*booking.PaymentMethod)
	}
	if booking.Notes != nil {
		data.Notes = *booking.Notes
	}
	return data
}

// parsePreferredDate accepts the date-only form the booking widget sends
// and full RFC 3339 timestamps.
func parsePreferredDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
