package store

import (
	"time"

	"beautyart-backend/models"
)

// Seed loads the demo dataset: a small service catalog, a handful of regular
// customers, appointments for today and the next two days, and one paid bill
// for today. Intended for local runs; a real deployment would hydrate the
// store from a persistence collaborator instead.
func Seed(s *Store) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	facial := models.Service{ID: s.GenerateID(), Name: "Facial Treatment", Description: "Deep cleansing facial with moisturizing", Duration: 60, Price: 80, Category: "Facial", IsActive: true}
	manicure := models.Service{ID: s.GenerateID(), Name: "Manicure", Description: "Classic nail care and polish", Duration: 45, Price: 35, Category: "Nails", IsActive: true}
	pedicure := models.Service{ID: s.GenerateID(), Name: "Pedicure", Description: "Foot care with polish and massage", Duration: 60, Price: 45, Category: "Nails", IsActive: true}
	haircut := models.Service{ID: s.GenerateID(), Name: "Hair Cut & Style", Description: "Professional haircut and styling", Duration: 90, Price: 65, Category: "Hair", IsActive: true}
	hairColor := models.Service{ID: s.GenerateID(), Name: "Hair Color", Description: "Full hair coloring service", Duration: 120, Price: 120, Category: "Hair", IsActive: true}
	threading := models.Service{ID: s.GenerateID(), Name: "Eyebrow Threading", Description: "Precision eyebrow shaping", Duration: 20, Price: 25, Category: "Facial", IsActive: true}
	makeup := models.Service{ID: s.GenerateID(), Name: "Makeup Application", Description: "Professional makeup for special events", Duration: 45, Price: 75, Category: "Makeup", IsActive: true}
	for _, svc := range []models.Service{facial, manicure, pedicure, haircut, hairColor, threading, makeup} {
		s.AddService(svc)
	}

	sarah := seedCustomer(s, "Sarah Johnson", "+1-555-0101", "sarah.j@email.com", 12, 960, today.AddDate(0, 0, -14))
	emma := seedCustomer(s, "Emma Wilson", "+1-555-0102", "emma.w@email.com", 8, 640, today.AddDate(0, 0, -19))
	olivia := seedCustomer(s, "Olivia Brown", "+1-555-0103", "olivia.b@email.com", 15, 1200, today.AddDate(0, 0, -17))
	seedCustomer(s, "Ava Davis", "+1-555-0104", "ava.d@email.com", 6, 480, today.AddDate(0, 0, -21))
	seedCustomer(s, "Isabella Miller", "+1-555-0105", "isabella.m@email.com", 10, 800, today.AddDate(0, 0, -15))

	appts := []models.Appointment{
		seedAppointment(s, sarah, facial, today, "10:00", now),
		seedAppointment(s, emma, manicure, today, "14:00", now),
		seedAppointment(s, olivia, haircut, today.AddDate(0, 0, 1), "11:00", now),
	}
	for _, a := range appts {
		s.AddAppointment(a)
	}

	s.AddBill(models.Bill{
		ID:            s.GenerateID(),
		BillNumber:    "BILL-" + now.Format("20060102") + "-SEED01",
		AppointmentID: appts[0].ID,
		CustomerID:    sarah.ID,
		CustomerName:  sarah.Name,
		Services: []models.BillService{
			{ServiceID: facial.ID, ServiceName: facial.Name, Quantity: 1, Price: 80, Total: 80},
		},
		Subtotal:      80,
		Tax:           8,
		Discount:      0,
		Total:         88,
		PaymentMethod: models.PaymentCard,
		PaymentStatus: models.PaymentPaid,
		Date:          now,
	})
}

func seedCustomer(s *Store, name, phone, email string, visits int, spent float64, lastVisit time.Time) models.Customer {
	c := models.Customer{
		ID:          s.GenerateID(),
		Name:        name,
		Phone:       phone,
		Email:       email,
		TotalVisits: visits,
		TotalSpent:  spent,
		LastVisit:   &lastVisit,
		CreatedAt:   lastVisit.AddDate(0, -7, 0),
	}
	s.AddCustomer(c)
	return c
}

func seedAppointment(s *Store, c models.Customer, svc models.Service, date time.Time, timeOfDay string, now time.Time) models.Appointment {
	return models.Appointment{
		ID:            s.GenerateID(),
		CustomerID:    c.ID,
		CustomerName:  c.Name,
		CustomerPhone: c.Phone,
		CustomerEmail: c.Email,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Duration:      svc.Duration,
		Price:         svc.Price,
		Date:          date,
		Time:          timeOfDay,
		Status:        models.AppointmentScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
