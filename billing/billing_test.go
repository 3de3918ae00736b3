package billing

import (
	"errors"
	"math"
	"testing"
	"time"

	"beautyart-backend/models"
)

const tolerance = 1e-6

func TestComputeTotals(t *testing.T) {
	lines := []LineInput{{ServiceID: "svc-1", ServiceName: "Facial Treatment", Quantity: 2, Price: 50}}

	totals, err := ComputeTotals(lines, 10, 8.5)
	if err != nil {
		t.Fatalf("compute totals: %v", err)
	}

	if totals.Subtotal != 100 {
		t.Errorf("subtotal = %v, want 100", totals.Subtotal)
	}
	if totals.DiscountAmount != 10 {
		t.Errorf("discount = %v, want 10", totals.DiscountAmount)
	}
	if totals.TaxAmount != 8.5 {
		t.Errorf("tax = %v, want 8.5", totals.TaxAmount)
	}
	if totals.Total != 98.5 {
		t.Errorf("total = %v, want 98.5", totals.Total)
	}
}

func TestComputeTotalsInvariant(t *testing.T) {
	cases := []struct {
		name     string
		lines    []LineInput
		discount float64
		tax      float64
	}{
		{"single line no rates", []LineInput{{Quantity: 1, Price: 80}}, 0, 0},
		{"multiple lines", []LineInput{{Quantity: 3, Price: 35}, {Quantity: 1, Price: 120}, {Quantity: 2, Price: 25}}, 15, 8.5},
		{"free line item", []LineInput{{Quantity: 1, Price: 0}, {Quantity: 2, Price: 45.5}}, 7.25, 12.5},
		{"full discount", []LineInput{{Quantity: 4, Price: 19.99}}, 100, 50},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := ComputeTotals(tt.lines, tt.discount, tt.tax)
			if err != nil {
				t.Fatalf("compute totals: %v", err)
			}
			want := totals.Subtotal + totals.TaxAmount - totals.DiscountAmount
			if math.Abs(totals.Total-want) > tolerance {
				t.Errorf("total = %v, want subtotal+tax-discount = %v", totals.Total, want)
			}

			var subtotal float64
			for _, line := range tt.lines {
				subtotal += float64(line.Quantity) * line.Price
			}
			if math.Abs(totals.Subtotal-subtotal) > tolerance {
				t.Errorf("subtotal = %v, want %v", totals.Subtotal, subtotal)
			}
		})
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	lines := []LineInput{{Quantity: 2, Price: 45}, {Quantity: 1, Price: 79.99}}

	first, err := ComputeTotals(lines, 12.5, 8.5)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := ComputeTotals(lines, 12.5, 8.5)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	if first != second {
		t.Errorf("recomputation differs: %+v vs %+v", first, second)
	}
}

func TestComputeTotalsRejectsInvalidInput(t *testing.T) {
	valid := []LineInput{{Quantity: 1, Price: 50}}

	cases := []struct {
		name     string
		lines    []LineInput
		discount float64
		tax      float64
	}{
		{"no lines", nil, 0, 0},
		{"negative discount", valid, -1, 0},
		{"discount above 100", valid, 100.01, 0},
		{"negative tax", valid, 0, -0.5},
		{"tax above 50", valid, 0, 50.1},
		{"zero quantity", []LineInput{{Quantity: 0, Price: 50}}, 0, 0},
		{"negative quantity", []LineInput{{Quantity: -2, Price: 50}}, 0, 0},
		{"negative price", []LineInput{{Quantity: 1, Price: -50}}, 0, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.lines, tt.discount, tt.tax)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestLinePricing(t *testing.T) {
	svc := models.Service{ID: "svc-1", Name: "Hair Color", Price: 150}
	appt := models.Appointment{
		ID:          "appt-1",
		CustomerID:  "cust-1",
		ServiceID:   "svc-1",
		ServiceName: "Hair Color",
		Price:       120, // booked before the price went up
		Status:      models.AppointmentCompleted,
	}

	t.Run("catalog lines use the current price", func(t *testing.T) {
		line := LineFromService(svc, 2)
		if line.Price != 150 {
			t.Errorf("price = %v, want live catalog price 150", line.Price)
		}
		if line.Quantity != 2 {
			t.Errorf("quantity = %v, want 2", line.Quantity)
		}
	})

	t.Run("appointment lines keep the booked price", func(t *testing.T) {
		line := LineFromAppointment(appt)
		if line.Price != 120 {
			t.Errorf("price = %v, want appointment snapshot price 120", line.Price)
		}
		if line.Quantity != 1 {
			t.Errorf("quantity = %v, want 1", line.Quantity)
		}
	})
}

func TestDraftFromAppointment(t *testing.T) {
	now := time.Now()
	appt := models.Appointment{
		ID:           "appt-1",
		CustomerID:   "cust-1",
		CustomerName: "Sarah Johnson",
		ServiceID:    "svc-1",
		ServiceName:  "Facial Treatment",
		Price:        80,
		Status:       models.AppointmentCompleted,
	}

	draft, err := DraftFromAppointment(appt, 8.5, now)
	if err != nil {
		t.Fatalf("draft: %v", err)
	}

	if draft.AppointmentID != "appt-1" {
		t.Errorf("appointmentId = %q, want appt-1", draft.AppointmentID)
	}
	if draft.CustomerName != "Sarah Johnson" {
		t.Errorf("customerName = %q, want Sarah Johnson", draft.CustomerName)
	}
	if len(draft.Services) != 1 {
		t.Fatalf("expected one line item, got %d", len(draft.Services))
	}
	line := draft.Services[0]
	if line.Quantity != 1 || line.Price != 80 || line.Total != 80 {
		t.Errorf("line = %+v, want quantity 1 at price 80", line)
	}
	if draft.Subtotal != 80 {
		t.Errorf("subtotal = %v, want 80", draft.Subtotal)
	}
	if math.Abs(draft.Tax-6.8) > tolerance {
		t.Errorf("tax = %v, want 6.8", draft.Tax)
	}
	if math.Abs(draft.Total-86.8) > tolerance {
		t.Errorf("total = %v, want 86.8", draft.Total)
	}
	if draft.PaymentStatus != models.PaymentPending {
		t.Errorf("paymentStatus = %q, want pending", draft.PaymentStatus)
	}
	if draft.ID != "" || draft.BillNumber != "" {
		t.Errorf("draft should carry no id or bill number, got %q/%q", draft.ID, draft.BillNumber)
	}
}

func TestDraftFromAppointmentRequiresCompleted(t *testing.T) {
	for _, status := range []models.AppointmentStatus{
		models.AppointmentScheduled,
		models.AppointmentCancelled,
		models.AppointmentNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			appt := models.Appointment{ID: "appt-1", Price: 80, Status: status}
			_, err := DraftFromAppointment(appt, 8.5, time.Now())
			if err == nil {
				t.Fatal("expected error for non-completed appointment")
			}
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
