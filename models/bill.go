package models

import "time"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentRefunded PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentRefunded:
		return true
	}
	return false
}

// Bill holds money amounts, not rates: Tax and Discount are the computed
// currency amounts. Total = Subtotal + Tax - Discount.
type Bill struct {
	ID            string        `json:"id"`
	BillNumber    string        `json:"billNumber"`
	AppointmentID string        `json:"appointmentId,omitempty"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Services      []BillService `json:"services"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Date          time.Time     `json:"date"`
	Notes         string        `json:"notes,omitempty"`
}

// BillService is one line item. ServiceName and Price are snapshots of the
// catalog entry at billing time.
type BillService struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}
