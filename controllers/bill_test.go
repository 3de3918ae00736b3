package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beautyart-backend/config"
	"beautyart-backend/models"
	"beautyart-backend/routes"
	"beautyart-backend/store"

	"github.com/gin-gonic/gin"
)

func setup(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.New()
	cfg := config.Config{Port: "8080", DefaultTaxPercent: 8.5, AllowedOrigins: []string{"http://localhost:4200"}}
	return routes.SetupRouter(s, cfg), s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedService(s *store.Store, name string, price float64) models.Service {
	svc := models.Service{ID: s.GenerateID(), Name: name, Duration: 60, Price: price, Category: "General", IsActive: true}
	s.AddService(svc)
	return svc
}

func seedCustomer(s *store.Store, name, phone string) models.Customer {
	c := models.Customer{ID: s.GenerateID(), Name: name, Phone: phone, Email: "x@test.com", TotalVisits: 2, TotalSpent: 100, CreatedAt: time.Now()}
	s.AddCustomer(c)
	return c
}

func TestCreateBill(t *testing.T) {
	r, s := setup(t)
	svc := seedService(s, "Facial Treatment", 50)
	customer := seedCustomer(s, "Sarah Johnson", "+1-555-0101")

	w := doJSON(t, r, http.MethodPost, "/api/bills", gin.H{
		"customerId":    customer.ID,
		"items":         []gin.H{{"serviceId": svc.ID, "quantity": 2}},
		"discount":      10,
		"tax":           8.5,
		"paymentMethod": "card",
		"paymentStatus": "paid",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var bill models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bill.Subtotal != 100 || bill.Discount != 10 || bill.Tax != 8.5 {
		t.Errorf("amounts = %v/%v/%v, want 100/10/8.5", bill.Subtotal, bill.Discount, bill.Tax)
	}
	if math.Abs(bill.Total-98.5) > 1e-6 {
		t.Errorf("total = %v, want 98.5", bill.Total)
	}
	if bill.BillNumber == "" {
		t.Error("expected a bill number")
	}
	if len(bill.Services) != 1 || bill.Services[0].ServiceName != "Facial Treatment" {
		t.Errorf("line items = %+v", bill.Services)
	}

	// customer aggregates bumped
	updated, err := s.GetCustomer(customer.ID)
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if updated.TotalVisits != 3 {
		t.Errorf("totalVisits = %d, want 3", updated.TotalVisits)
	}
	if math.Abs(updated.TotalSpent-198.5) > 1e-6 {
		t.Errorf("totalSpent = %v, want 198.5", updated.TotalSpent)
	}
	if updated.LastVisit == nil {
		t.Error("lastVisit not stamped")
	}

	// bill is listed
	if got := len(s.Bills()); got != 1 {
		t.Errorf("bills in store = %d, want 1", got)
	}
}

func TestCreateBillRejectsBadPercentages(t *testing.T) {
	r, s := setup(t)
	svc := seedService(s, "Manicure", 35)

	for name, body := range map[string]gin.H{
		"tax too high": {
			"customerName":  "Walk In",
			"items":         []gin.H{{"serviceId": svc.ID, "quantity": 1}},
			"tax":           50.5,
			"paymentMethod": "cash",
			"paymentStatus": "pending",
		},
		"discount too high": {
			"customerName":  "Walk In",
			"items":         []gin.H{{"serviceId": svc.ID, "quantity": 1}},
			"discount":      101,
			"paymentMethod": "cash",
			"paymentStatus": "pending",
		},
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/bills", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if got := len(s.Bills()); got != 0 {
				t.Errorf("store mutated on invalid input: %d bills", got)
			}
		})
	}
}

func TestCreateBillUsesLivePriceUnlessOverridden(t *testing.T) {
	r, s := setup(t)
	svc := seedService(s, "Hair Color", 150)

	override := 120.0
	w := doJSON(t, r, http.MethodPost, "/api/bills", gin.H{
		"customerName":  "Walk In",
		"items":         []gin.H{{"serviceId": svc.ID, "quantity": 1, "price": override}},
		"paymentMethod": "cash",
		"paymentStatus": "pending",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var bill models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bill.Services[0].Price != 120 {
		t.Errorf("price = %v, want the 120 override", bill.Services[0].Price)
	}

	w = doJSON(t, r, http.MethodPost, "/api/bills", gin.H{
		"customerName":  "Walk In",
		"items":         []gin.H{{"serviceId": svc.ID, "quantity": 1}},
		"paymentMethod": "cash",
		"paymentStatus": "pending",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bill.Services[0].Price != 150 {
		t.Errorf("price = %v, want live catalog price 150", bill.Services[0].Price)
	}
}

func TestBillDraftFromAppointment(t *testing.T) {
	r, s := setup(t)
	customer := seedCustomer(s, "Emma Wilson", "+1-555-0102")

	now := time.Now()
	appt := models.Appointment{
		ID:           s.GenerateID(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		ServiceID:    s.GenerateID(),
		ServiceName:  "Pedicure",
		Price:        45,
		Date:         now,
		Time:         "11:00",
		Status:       models.AppointmentCompleted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.AddAppointment(appt)

	w := doJSON(t, r, http.MethodGet, "/api/bills/draft/"+appt.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var draft models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if draft.AppointmentID != appt.ID {
		t.Errorf("appointmentId = %q, want %q", draft.AppointmentID, appt.ID)
	}
	if len(draft.Services) != 1 || draft.Services[0].Price != 45 || draft.Services[0].Quantity != 1 {
		t.Errorf("draft line = %+v, want one unit at the appointment price", draft.Services)
	}

	// scheduled appointments cannot be billed yet
	appt2 := appt
	appt2.ID = s.GenerateID()
	appt2.Status = models.AppointmentScheduled
	s.AddAppointment(appt2)

	w = doJSON(t, r, http.MethodGet, "/api/bills/draft/"+appt2.ID, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/bills/draft/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateBillPayment(t *testing.T) {
	r, s := setup(t)
	bill := models.Bill{
		ID:            s.GenerateID(),
		CustomerName:  "Olivia Brown",
		Services:      []models.BillService{{ServiceID: "svc", ServiceName: "Manicure", Quantity: 1, Price: 35, Total: 35}},
		Subtotal:      35,
		Total:         35,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentPending,
		Date:          time.Now(),
	}
	s.AddBill(bill)

	w := doJSON(t, r, http.MethodPatch, "/api/bills/"+bill.ID+"/payment", gin.H{
		"paymentStatus": "paid",
		"paymentMethod": "online",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	stored, err := s.GetBill(bill.ID)
	if err != nil {
		t.Fatalf("get bill: %v", err)
	}
	if stored.PaymentStatus != models.PaymentPaid || stored.PaymentMethod != models.PaymentOnline {
		t.Errorf("payment = %s/%s, want paid/online", stored.PaymentStatus, stored.PaymentMethod)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/bills/missing/payment", gin.H{"paymentStatus": "paid"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListBillsFiltered(t *testing.T) {
	r, s := setup(t)
	now := time.Now()
	for i, st := range []models.PaymentStatus{models.PaymentPaid, models.PaymentPending, models.PaymentPaid} {
		s.AddBill(models.Bill{
			ID:            fmt.Sprintf("b%d", i+1),
			CustomerName:  "Sarah Johnson",
			Date:          now.AddDate(0, 0, -i),
			PaymentStatus: st,
		})
	}

	w := doJSON(t, r, http.MethodGet, "/api/bills?status=paid&search=sarah", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var bills []models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("len = %d, want 2", len(bills))
	}
	if bills[0].ID != "b1" || bills[1].ID != "b3" {
		t.Errorf("order = %s,%s, want b1,b3 (most recent first)", bills[0].ID, bills[1].ID)
	}
}
