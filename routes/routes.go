package routes

import (
	"beautyart-backend/config"
	"beautyart-backend/controllers"
	"beautyart-backend/dashboard"
	"beautyart-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(s *store.Store, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	appointmentController := controllers.NewAppointmentController(s)
	customerController := controllers.NewCustomerController(s)
	serviceController := controllers.NewServiceController(s)
	billController := controllers.NewBillController(s, cfg.DefaultTaxPercent)
	dashboardController := controllers.NewDashboardController(s, dashboard.Growth{
		Revenue:  cfg.RevenueGrowth,
		Customer: cfg.CustomerGrowth,
	})

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.Create)
			customers.GET("", customerController.List)
			customers.GET("/:id", customerController.Get)
			customers.PUT("/:id", customerController.Update)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", serviceController.Create)
			services.GET("", serviceController.List)
			services.GET("/:id", serviceController.Get)
			services.PUT("/:id", serviceController.Update)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.Create)
			appointments.GET("", appointmentController.List)
			appointments.GET("/:id", appointmentController.Get)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.PATCH("/:id/status", appointmentController.UpdateStatus)
			appointments.DELETE("/:id", appointmentController.Delete)
		}

		// Bill routes
		bills := api.Group("/bills")
		{
			bills.POST("", billController.Create)
			bills.GET("", billController.List)
			bills.GET("/draft/:appointmentId", billController.Draft)
			bills.GET("/:id", billController.Get)
			bills.PATCH("/:id/payment", billController.UpdatePayment)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.Overview)
	}

	return r
}
