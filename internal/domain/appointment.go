package domain

import "time"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// CanTransitionTo reports whether an admin may move an appointment from s to next.
// pending -> confirmed, pending/confirmed -> completed, pending/confirmed -> cancelled.
// completed and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Blocks reports whether an appointment in this status still occupies its slots.
// Cancelled and completed appointments do not block new bookings.
func (s AppointmentStatus) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Appointment struct {
	ID            int64             `json:"id"`
	BarberName    string            `json:"barberName"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	CustomerEmail string            `json:"customerEmail"`
	Service       string            `json:"service"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Time          string            `json:"time"` // slot label, e.g. "2:15 PM"
	Status        AppointmentStatus `json:"status"`
	Price         int32             `json:"price"`    // snapshot in whole pesos
	Duration      int32             `json:"duration"` // snapshot in minutes
	BookingNumber int64             `json:"bookingNumber"`
	Notes         string            `json:"notes"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	Version       int32             `json:"-"`
}

// BlockingSlot is the projection the availability resolver needs from an
// existing appointment: where it starts and how long it runs.
type BlockingSlot struct {
	Time     string
	Duration int32
}
