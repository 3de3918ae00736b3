// Package dashboard derives point-in-time business statistics from store
// snapshots. Nothing is cached or maintained incrementally: every call
// recomputes from the collections it is handed, so the result is always
// consistent with the store's current state.
package dashboard

import (
	"sort"
	"time"

	"beautyart-backend/models"
	"beautyart-backend/utils"
)

// Growth carries the externally supplied growth percentages. No historical
// series exists in this system, so they are inputs, never computed here.
type Growth struct {
	Revenue  float64
	Customer float64
}

// Compute derives the dashboard statistics as of now. "Today" and "this
// month" are calendar truncations in now's location: inclusive of the period
// start, exclusive of the next period start.
func Compute(appointments []models.Appointment, bills []models.Bill, customers []models.Customer, now time.Time, growth Growth) models.DashboardStats {
	dayStart := utils.BeginningOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := utils.BeginningOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats := models.DashboardStats{
		TotalCustomers: len(customers),
		RevenueGrowth:  growth.Revenue,
		CustomerGrowth: growth.Customer,
	}

	for _, a := range appointments {
		if inRange(a.Date, dayStart, dayEnd) {
			stats.TodayAppointments++
		}
		switch a.Status {
		case models.AppointmentScheduled:
			stats.PendingAppointments++
		case models.AppointmentCompleted:
			stats.CompletedAppointments++
		}
	}

	for _, b := range bills {
		if inRange(b.Date, dayStart, dayEnd) {
			stats.TodayRevenue += b.Total
		}
		if inRange(b.Date, monthStart, monthEnd) {
			stats.MonthlyRevenue += b.Total
		}
	}

	return stats
}

// Recent returns the n most recently created appointments, newest first.
func Recent(appointments []models.Appointment, n int) []models.Appointment {
	out := make([]models.Appointment, len(appointments))
	copy(out, appointments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
