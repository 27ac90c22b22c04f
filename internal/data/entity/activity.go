package entity

// Activity is a bookable tour/experience. Price is stored as a string, the
// way the catalog was originally entered; the booking flow parses its
// leading integer part when computing totals.
type Activity struct {
	Base
	Name              string   `db:"name"`
	Description       string   `db:"description"`
	Price             string   `db:"price"`
	Currency          string   `db:"currency"`
	Image             string   `db:"image"`
	Photos            []string `db:"photos"`
	Category          string   `db:"category"`
	IsActive          bool     `db:"is_active"`
	GetYourGuidePrice *int     `db:"getyourguide_price"`
	Availability      *string  `db:"availability"`
	Duration          *string  `db:"duration"`
}
