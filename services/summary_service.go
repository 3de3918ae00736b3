// services/summary_service.go
package services

import (
	"log"
	"time"

	"beautyart-backend/dashboard"
	"beautyart-backend/store"

	"github.com/robfig/cron/v3"
)

// SummaryService logs a dashboard summary once a day so the day's figures
// end up in the server log even if nobody opened the dashboard.
type SummaryService struct {
	store  *store.Store
	growth dashboard.Growth
}

func NewSummaryService(s *store.Store, growth dashboard.Growth) *SummaryService {
	return &SummaryService{store: s, growth: growth}
}

func (s *SummaryService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.LogDailySummary)

	c.Start()
	log.Println("Daily summary scheduler started")
}

func (s *SummaryService) LogDailySummary() {
	stats := dashboard.Compute(
		s.store.Appointments(),
		s.store.Bills(),
		s.store.Customers(),
		time.Now(),
		s.growth,
	)

	log.Printf("Daily summary: %d appointments today, %d pending, %d completed, today revenue %.2f, month revenue %.2f, %d customers",
		stats.TodayAppointments,
		stats.PendingAppointments,
		stats.CompletedAppointments,
		stats.TodayRevenue,
		stats.MonthlyRevenue,
		stats.TotalCustomers)
}
