package request

type CreateBookingRequest struct {
	CustomerName     string   `json:"customerName" validate:"required,min=1"`
	CustomerPhone    string   `json:"customerPhone" validate:"required,min=1"`
	CustomerEmail    *string  `json:"customerEmail,omitempty" validate:"omitempty,email"`
	ActivityID       string   `json:"activityId" validate:"required,uuid4"`
	NumberOfPeople   int      `json:"numberOfPeople" validate:"required,min=1"`
	PreferredDate    string   `json:"preferredDate" validate:"required"`
	ParticipantNames []string `json:"participantNames,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// UpdateBookingPaymentRequest mirrors the admin payment panel. The paid
// amount is taken as sent; the dashboard computes full/deposit/balance
// amounts client-side.
type UpdateBookingPaymentRequest struct {
	PaymentStatus string  `json:"paymentStatus" validate:"required,oneof=unpaid deposit_paid fully_paid"`
	PaidAmount    int     `json:"paidAmount" validate:"min=0"`
	PaymentMethod *string `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash cash_deposit"`
	DepositAmount *int    `json:"depositAmount,omitempty" validate:"omitempty,min=0"`
}
