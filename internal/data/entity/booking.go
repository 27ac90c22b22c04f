package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid      PaymentStatus = "unpaid"
	PaymentStatusDepositPaid PaymentStatus = "deposit_paid"
	PaymentStatusFullyPaid   PaymentStatus = "fully_paid"
)

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCashDeposit PaymentMethod = "cash_deposit"
)

// Booking is a customer reservation against an Activity. TotalAmount is a
// string snapshot of price * numberOfPeople computed at creation time.
type Booking struct {
	Base
	CustomerName     string        `db:"customer_name"`
	CustomerPhone    string        `db:"customer_phone"`
	CustomerEmail    *string       `db:"customer_email"`
	ActivityID       uuid.UUID     `db:"activity_id"`
	NumberOfPeople   int           `db:"number_of_people"`
	PreferredDate    time.Time     `db:"preferred_date"`
	ParticipantNames []string      `db:"participant_names"`
	Notes            *string       `db:"notes"`
	Status           BookingStatus `db:"status"`
	TotalAmount      string        `db:"total_amount"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	PaymentMethod    *PaymentMethod `db:"payment_method"`
	PaidAmount       int           `db:"paid_amount"`
	DepositAmount    *int          `db:"deposit_amount"`
}

// BookingWithActivity joins the referenced activity for admin listings.
type BookingWithActivity struct {
	Booking
	Activity *Activity
}
