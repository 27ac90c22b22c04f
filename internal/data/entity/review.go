package entity

import (
	"github.com/google/uuid"
)

// Review is customer feedback on an activity. Only approved reviews are
// publicly listed and counted in the rating average.
type Review struct {
	Base
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	ActivityID    uuid.UUID `db:"activity_id"`
	Rating        int       `db:"rating"` // 1-5
	Title         string    `db:"title"`
	Comment       string    `db:"comment"`
	Verified      bool      `db:"verified"`
	Approved      bool      `db:"approved"`
}

type ReviewWithActivity struct {
	Review
	Activity *Activity
}
