package models

// DashboardStats is derived on demand from the current store snapshot and is
// never persisted. RevenueGrowth and CustomerGrowth are externally supplied:
// there is no historical series in this system to compute them from.
type DashboardStats struct {
	TodayAppointments     int     `json:"todayAppointments"`
	TodayRevenue          float64 `json:"todayRevenue"`
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
	TotalCustomers        int     `json:"totalCustomers"`
	PendingAppointments   int     `json:"pendingAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	RevenueGrowth         float64 `json:"revenueGrowth"`
	CustomerGrowth        float64 `json:"customerGrowth"`
}
