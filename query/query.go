// Package query filters and sorts the appointment and bill lists the way the
// front office browses them: a status filter, a free-text search, and a fixed
// sort per collection.
package query

import (
	"sort"
	"strings"

	"beautyart-backend/models"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// FilterAppointments returns the appointments matching status and search,
// sorted ascending by date (upcoming first). status "all" and an empty search
// term each match everything; the two predicates are ANDed. The search term
// matches customer name, service name, and phone, case-insensitively. The
// input slice is not modified.
func FilterAppointments(appointments []models.Appointment, status, search string) []models.Appointment {
	term := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if status != StatusAll && string(a.Status) != status {
			continue
		}
		if term != "" && !appointmentMatches(a, term) {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered
}

// FilterBills returns the bills matching status and search, sorted descending
// by date (most recent first). The search term matches customer name and bill
// id, case-insensitively. The input slice is not modified.
func FilterBills(bills []models.Bill, status, search string) []models.Bill {
	term := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if status != StatusAll && string(b.PaymentStatus) != status {
			continue
		}
		if term != "" && !billMatches(b, term) {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

func appointmentMatches(a models.Appointment, term string) bool {
	return strings.Contains(strings.ToLower(a.CustomerName), term) ||
		strings.Contains(strings.ToLower(a.ServiceName), term) ||
		strings.Contains(strings.ToLower(a.CustomerPhone), term)
}

func billMatches(b models.Bill, term string) bool {
	return strings.Contains(strings.ToLower(b.CustomerName), term) ||
		strings.Contains(strings.ToLower(b.ID), term)
}
