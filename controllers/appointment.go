// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"beautyart-backend/models"
	"beautyart-backend/query"
	"beautyart-backend/store"
	"beautyart-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateAppointmentInput defines the expected JSON structure for creating an
// appointment. Either CustomerID references an existing customer, or the
// customer fields describe a walk-in to be registered on the spot.
type CreateAppointmentInput struct {
	CustomerID    string     `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	CustomerEmail string     `json:"customerEmail" binding:"omitempty,email"`
	ServiceID     string     `json:"serviceId" binding:"required"`
	Date          *time.Time `json:"date" binding:"required"`
	Time          string     `json:"time" binding:"required"`
	Notes         string     `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating an
// appointment. Only provided fields change.
type UpdateAppointmentInput struct {
	ServiceID *string                   `json:"serviceId"`
	Date      *time.Time                `json:"date"`
	Time      *string                   `json:"time"`
	Status    *models.AppointmentStatus `json:"status"`
	Notes     *string                   `json:"notes"`
}

// UpdateAppointmentStatusInput carries a bare status transition.
type UpdateAppointmentStatusInput struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled no-show"`
}

type AppointmentController struct {
	Store *store.Store
}

func NewAppointmentController(s *store.Store) *AppointmentController {
	return &AppointmentController{Store: s}
}

// Create books a new appointment, snapshotting the customer's contact fields
// and the service's name, duration, and price at creation time.
func (ac *AppointmentController) Create(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ac.Store.GetService(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+input.ServiceID)
		return
	}
	if !service.IsActive {
		utils.RespondWithError(c, http.StatusBadRequest, "Service is no longer offered")
		return
	}

	now := time.Now()
	appointment := models.Appointment{
		ID:          ac.Store.GenerateID(),
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Duration:    service.Duration,
		Price:       service.Price,
		Date:        *input.Date,
		Time:        input.Time,
		Status:      models.AppointmentScheduled,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.CustomerID != "" {
		customer, err := ac.Store.GetCustomer(input.CustomerID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			return
		}
		appointment.CustomerID = customer.ID
		appointment.CustomerName = customer.Name
		appointment.CustomerPhone = customer.Phone
		appointment.CustomerEmail = customer.Email
	} else {
		if input.CustomerName == "" || input.CustomerPhone == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer name and phone are required for walk-ins")
			return
		}
		if !utils.ValidatePhone(input.CustomerPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer := models.Customer{
			ID:        ac.Store.GenerateID(),
			Name:      input.CustomerName,
			Phone:     input.CustomerPhone,
			Email:     input.CustomerEmail,
			CreatedAt: now,
		}
		ac.Store.AddCustomer(customer)
		appointment.CustomerID = customer.ID
		appointment.CustomerName = customer.Name
		appointment.CustomerPhone = customer.Phone
		appointment.CustomerEmail = customer.Email
	}

	ac.Store.AddAppointment(appointment)

	c.JSON(http.StatusCreated, appointment)
}

// List retrieves appointments filtered by ?status= and ?search=, sorted
// ascending by date.
func (ac *AppointmentController) List(c *gin.Context) {
	status := c.DefaultQuery("status", query.StatusAll)
	search := c.Query("search")

	appointments := query.FilterAppointments(ac.Store.Appointments(), status, search)

	c.JSON(http.StatusOK, appointments)
}

// Get retrieves a specific appointment by ID
func (ac *AppointmentController) Get(c *gin.Context) {
	appointment, err := ac.Store.GetAppointment(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// Update updates an existing appointment. Switching the service re-snapshots
// its name, duration, and price from the catalog's current entry.
func (ac *AppointmentController) Update(c *gin.Context) {
	appointment, err := ac.Store.GetAppointment(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ServiceID != nil && *input.ServiceID != appointment.ServiceID {
		service, err := ac.Store.GetService(*input.ServiceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+*input.ServiceID)
			return
		}
		if !service.IsActive {
			utils.RespondWithError(c, http.StatusBadRequest, "Service is no longer offered")
			return
		}
		appointment.ServiceID = service.ID
		appointment.ServiceName = service.Name
		appointment.Duration = service.Duration
		appointment.Price = service.Price
	}
	if input.Date != nil {
		appointment.Date = *input.Date
	}
	if input.Time != nil {
		appointment.Time = *input.Time
	}
	if input.Status != nil {
		if !models.ValidAppointmentStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment status")
			return
		}
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}
	appointment.UpdatedAt = time.Now()

	if err := ac.Store.UpdateAppointment(appointment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateStatus transitions an appointment between scheduled, completed,
// cancelled, and no-show.
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := ac.Store.GetAppointment(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	appointment.Status = input.Status
	appointment.UpdatedAt = time.Now()

	if err := ac.Store.UpdateAppointment(appointment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// Delete removes an appointment from the store.
func (ac *AppointmentController) Delete(c *gin.Context) {
	if err := ac.Store.DeleteAppointment(c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
