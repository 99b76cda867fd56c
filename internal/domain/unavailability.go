package domain

import "time"

// Unavailability is a stylist's declaration that some or all slots on a date
// are not bookable. At most one record exists per (barberName, date).
type Unavailability struct {
	ID         int64     `json:"id"`
	BarberName string    `json:"barberName"`
	Date       string    `json:"date"` // YYYY-MM-DD
	TimeSlots  []string  `json:"timeSlots"`
	IsFullDay  bool      `json:"isFullDay"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}
