// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"beautyart-backend/dashboard"
	"beautyart-backend/store"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Store  *store.Store
	Growth dashboard.Growth
}

func NewDashboardController(s *store.Store, growth dashboard.Growth) *DashboardController {
	return &DashboardController{Store: s, Growth: growth}
}

// Overview recomputes the dashboard from the current store snapshot: today's
// and this month's figures plus the five most recently created appointments.
func (dc *DashboardController) Overview(c *gin.Context) {
	appointments := dc.Store.Appointments()

	stats := dashboard.Compute(
		appointments,
		dc.Store.Bills(),
		dc.Store.Customers(),
		time.Now(),
		dc.Growth,
	)

	c.JSON(http.StatusOK, gin.H{
		"stats":              stats,
		"recentAppointments": dashboard.Recent(appointments, 5),
	})
}
