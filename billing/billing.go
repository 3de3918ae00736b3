// Package billing computes bill totals from draft line items and builds bill
// drafts from completed appointments. All computation is pure: the same
// inputs always produce the same outputs, and nothing here touches the store.
package billing

import (
	"fmt"
	"time"

	"beautyart-backend/models"
)

// Percentage bounds accepted by ComputeTotals. Values outside these ranges
// are rejected, never clamped.
const (
	MaxDiscountPercent = 100.0
	MaxTaxPercent      = 50.0
)

// LineInput is one draft line item before totals are derived.
type LineInput struct {
	ServiceID   string
	ServiceName string
	Quantity    int
	Price       float64
}

// Totals holds the derived amounts for a bill draft.
// Total = Subtotal + TaxAmount - DiscountAmount.
type Totals struct {
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	Total          float64
}

// ComputeTotals validates the draft and derives its totals. discountPercent
// must be within [0, 100] and taxPercent within [0, 50]; every line needs a
// positive quantity and a non-negative price.
func ComputeTotals(lines []LineInput, discountPercent, taxPercent float64) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, models.NewValidationError("services", "at least one line item is required")
	}
	if discountPercent < 0 || discountPercent > MaxDiscountPercent {
		return Totals{}, models.NewValidationError("discount", fmt.Sprintf("must be between 0 and %v", MaxDiscountPercent))
	}
	if taxPercent < 0 || taxPercent > MaxTaxPercent {
		return Totals{}, models.NewValidationError("tax", fmt.Sprintf("must be between 0 and %v", MaxTaxPercent))
	}

	var subtotal float64
	for i, line := range lines {
		if line.Quantity < 1 {
			return Totals{}, models.NewValidationError(fmt.Sprintf("services[%d].quantity", i), "must be a positive integer")
		}
		if line.Price < 0 {
			return Totals{}, models.NewValidationError(fmt.Sprintf("services[%d].price", i), "must not be negative")
		}
		subtotal += float64(line.Quantity) * line.Price
	}

	tax := subtotal * taxPercent / 100
	discount := subtotal * discountPercent / 100
	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		Total:          subtotal + tax - discount,
	}, nil
}

// BuildItems materializes validated line inputs as bill line items.
func BuildItems(lines []LineInput) []models.BillService {
	items := make([]models.BillService, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.BillService{
			ServiceID:   line.ServiceID,
			ServiceName: line.ServiceName,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Total:       float64(line.Quantity) * line.Price,
		})
	}
	return items
}

// LineFromService prices a line from the catalog's current price. Used when
// the caller picks a service directly rather than billing an appointment.
func LineFromService(svc models.Service, quantity int) LineInput {
	return LineInput{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Quantity:    quantity,
		Price:       svc.Price,
	}
}

// LineFromAppointment prices a line from the appointment's stored snapshot,
// not the catalog: the bill must charge what was agreed when the appointment
// was booked, even if the service price changed since.
func LineFromAppointment(a models.Appointment) LineInput {
	return LineInput{
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		Quantity:    1,
		Price:       a.Price,
	}
}

// DraftFromAppointment builds a prefilled bill draft for a completed
// appointment: one line at the appointment's snapshot price, customer fields
// copied over, and the appointment linked back. The draft carries no id or
// bill number; those are assigned when it is saved.
func DraftFromAppointment(a models.Appointment, taxPercent float64, now time.Time) (models.Bill, error) {
	if a.Status != models.AppointmentCompleted {
		return models.Bill{}, models.NewValidationError("status", "only completed appointments can be billed")
	}

	lines := []LineInput{LineFromAppointment(a)}
	totals, err := ComputeTotals(lines, 0, taxPercent)
	if err != nil {
		return models.Bill{}, err
	}

	return models.Bill{
		AppointmentID: a.ID,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		Services:      BuildItems(lines),
		Subtotal:      totals.Subtotal,
		Tax:           totals.TaxAmount,
		Discount:      totals.DiscountAmount,
		Total:         totals.Total,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentPending,
		Date:          now,
	}, nil
}
