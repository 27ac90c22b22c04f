package response

import "time"

type EarningsResponse struct {
	CurrentMonth int64  `json:"currentMonth"`
	LastMonth    int64  `json:"lastMonth"`
	Currency     string `json:"currency"`
}

type ActivityAnalytics struct {
	ActivityID   string `json:"activityId"`
	Name         string `json:"name"`
	BookingCount int64  `json:"bookingCount"`
}

type BookingAnalytics struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
}

type PriceComparison struct {
	ActivityID        string `json:"activityId"`
	Name              string `json:"name"`
	Price             string `json:"price"`
	GetYourGuidePrice *int   `json:"getyourguidePrice,omitempty"`
	Advantage         *int   `json:"advantage,omitempty"`
}

type HealthResponse struct {
	Status     string    `json:"status"`
	Storage    string    `json:"storage"`
	Activities int64     `json:"activities"`
	Timestamp  time.Time `json:"timestamp"`
}

type SystemHealthResponse struct {
	Database  string    `json:"database"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
