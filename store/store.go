package store

import (
	"sync"

	"beautyart-backend/models"

	"github.com/google/uuid"
)

// Listener callbacks receive a fresh snapshot of a collection. A listener is
// invoked once with the current snapshot when it subscribes and again after
// every mutation of that collection, in registration order.
type (
	AppointmentListener func([]models.Appointment)
	CustomerListener    func([]models.Customer)
	ServiceListener     func([]models.Service)
	BillListener        func([]models.Bill)
)

// Store owns the canonical collections. All access goes through its methods;
// snapshots are copies, so callers never hold live references into the store.
// Mutations complete, including subscriber notification, before returning.
type Store struct {
	mu sync.RWMutex

	appointments []models.Appointment
	customers    []models.Customer
	services     []models.Service
	bills        []models.Bill

	appointmentSubs []func([]models.Appointment)
	customerSubs    []func([]models.Customer)
	serviceSubs     []func([]models.Service)
	billSubs        []func([]models.Bill)
}

func New() *Store {
	return &Store{}
}

// GenerateID returns a fresh collision-resistant identifier.
func (s *Store) GenerateID() string {
	return uuid.NewString()
}

// ---- snapshots ----

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAppointments(s.appointments)
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCustomers(s.customers)
}

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyServices(s.services)
}

func (s *Store) Bills() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBills(s.bills)
}

// ---- appointments ----

func (s *Store) AddAppointment(a models.Appointment) {
	s.mu.Lock()
	s.appointments = append(s.appointments, a)
	subs, snap := s.appointmentSubs, copyAppointments(s.appointments)
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) UpdateAppointment(a models.Appointment) error {
	s.mu.Lock()
	idx := -1
	for i := range s.appointments {
		if s.appointments[i].ID == a.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewNotFoundError("appointment", a.ID)
	}
	s.appointments[idx] = a
	subs, snap := s.appointmentSubs, copyAppointments(s.appointments)
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

func (s *Store) DeleteAppointment(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewNotFoundError("appointment", id)
	}
	s.appointments = append(s.appointments[:idx], s.appointments[idx+1:]...)
	subs, snap := s.appointmentSubs, copyAppointments(s.appointments)
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

func (s *Store) GetAppointment(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return s.appointments[i], nil
		}
	}
	return models.Appointment{}, models.NewNotFoundError("appointment", id)
}

// SubscribeAppointments delivers the current snapshot immediately and again
// after every appointment mutation. The returned function cancels the
// subscription.
func (s *Store) SubscribeAppointments(fn AppointmentListener) func() {
	s.mu.Lock()
	s.appointmentSubs = append(s.appointmentSubs, fn)
	idx := len(s.appointmentSubs) - 1
	snap := copyAppointments(s.appointments)
	s.mu.Unlock()
	fn(snap)
	return func() {
		s.mu.Lock()
		s.appointmentSubs[idx] = nil
		s.mu.Unlock()
	}
}

// ---- customers ----

func (s *Store) AddCustomer(c models.Customer) {
	s.mu.Lock()
	s.customers = append(s.customers, c)
	subs, snap := s.customerSubs, copyCustomers(s.customers)
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) UpdateCustomer(c models.Customer) error {
	s.mu.Lock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewNotFoundError("customer", c.ID)
	}
	s.customers[idx] = c
	subs, snap := s.customerSubs, copyCustomers(s.customers)
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

func (s *Store) GetCustomer(id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			return s.customers[i], nil
		}
	}
	return models.Customer{}, models.NewNotFoundError("customer", id)
}

func (s *Store) SubscribeCustomers(fn CustomerListener) func() {
	s.mu.Lock()
	s.customerSubs = append(s.customerSubs, fn)
	idx := len(s.customerSubs) - 1
	snap := copyCustomers(s.customers)
	s.mu.Unlock()
	fn(snap)
	return func() {
		s.mu.Lock()
		s.customerSubs[idx] = nil
		s.mu.Unlock()
	}
}

// ---- services ----

func (s *Store) AddService(svc models.Service) {
	s.mu.Lock()
	s.services = append(s.services, svc)
	subs, snap := s.serviceSubs, copyServices(s.services)
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) UpdateService(svc models.Service) error {
	s.mu.Lock()
	idx := -1
	for i := range s.services {
		if s.services[i].ID == svc.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewNotFoundError("service", svc.ID)
	}
	s.services[idx] = svc
	subs, snap := s.serviceSubs, copyServices(s.services)
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

func (s *Store) GetService(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.services {
		if s.services[i].ID == id {
			return s.services[i], nil
		}
	}
	return models.Service{}, models.NewNotFoundError("service", id)
}

func (s *Store) SubscribeServices(fn ServiceListener) func() {
	s.mu.Lock()
	s.serviceSubs = append(s.serviceSubs, fn)
	idx := len(s.serviceSubs) - 1
	snap := copyServices(s.services)
	s.mu.Unlock()
	fn(snap)
	return func() {
		s.mu.Lock()
		s.serviceSubs[idx] = nil
		s.mu.Unlock()
	}
}

// ---- bills ----

func (s *Store) AddBill(b models.Bill) {
	s.mu.Lock()
	s.bills = append(s.bills, b)
	subs, snap := s.billSubs, copyBills(s.bills)
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) UpdateBill(b models.Bill) error {
	s.mu.Lock()
	idx := -1
	for i := range s.bills {
		if s.bills[i].ID == b.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewNotFoundError("bill", b.ID)
	}
	s.bills[idx] = b
	subs, snap := s.billSubs, copyBills(s.bills)
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

func (s *Store) GetBill(id string) (models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bills {
		if s.bills[i].ID == id {
			return cloneBill(s.bills[i]), nil
		}
	}
	return models.Bill{}, models.NewNotFoundError("bill", id)
}

func (s *Store) SubscribeBills(fn BillListener) func() {
	s.mu.Lock()
	s.billSubs = append(s.billSubs, fn)
	idx := len(s.billSubs) - 1
	snap := copyBills(s.bills)
	s.mu.Unlock()
	fn(snap)
	return func() {
		s.mu.Lock()
		s.billSubs[idx] = nil
		s.mu.Unlock()
	}
}

// ---- helpers ----

// notify runs outside the store lock so a listener may call back into the
// store. Cancelled subscriptions are nil entries.
func notify[T any](subs []func([]T), snap []T) {
	for _, fn := range subs {
		if fn != nil {
			fn(snap)
		}
	}
}

func copyAppointments(in []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(in))
	copy(out, in)
	return out
}

func copyCustomers(in []models.Customer) []models.Customer {
	out := make([]models.Customer, len(in))
	copy(out, in)
	return out
}

func copyServices(in []models.Service) []models.Service {
	out := make([]models.Service, len(in))
	copy(out, in)
	return out
}

func copyBills(in []models.Bill) []models.Bill {
	out := make([]models.Bill, len(in))
	for i := range in {
		out[i] = cloneBill(in[i])
	}
	return out
}

func cloneBill(b models.Bill) models.Bill {
	lines := make([]models.BillService, len(b.Services))
	copy(lines, b.Services)
	b.Services = lines
	return b
}
