package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// Appointment carries denormalized customer and service fields. They are
// snapshots taken at creation time: a later price change on the service must
// not alter what this appointment was booked at.
type Appointment struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customerId"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	CustomerEmail string            `json:"customerEmail"`
	ServiceID     string            `json:"serviceId"`
	ServiceName   string            `json:"serviceName"`
	Duration      int               `json:"duration"` // in minutes
	Price         float64           `json:"price"`
	Date          time.Time         `json:"date"`
	Time          string            `json:"time"` // local time of day, e.g. "14:00"
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
