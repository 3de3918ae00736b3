// controllers/service.go
package controllers

import (
	"net/http"

	"beautyart-backend/models"
	"beautyart-backend/store"
	"beautyart-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Duration    int     `json:"duration" binding:"required,min=1"` // in minutes
	Category    string  `json:"category"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Duration    *int     `json:"duration" binding:"omitempty,min=1"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

type ServiceController struct {
	Store *store.Store
}

func NewServiceController(s *store.Store) *ServiceController {
	return &ServiceController{Store: s}
}

// Create adds a new service to the catalog.
func (sc *ServiceController) Create(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := input.Category
	if category == "" {
		category = "General"
	}

	service := models.Service{
		ID:          sc.Store.GenerateID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    category,
		IsActive:    true,
	}

	sc.Store.AddService(service)

	c.JSON(http.StatusCreated, service)
}

// List retrieves the service catalog. ?active=true narrows it to the services
// offered for new selections; deactivated services stay reachable by id for
// historical records.
func (sc *ServiceController) List(c *gin.Context) {
	services := sc.Store.Services()

	if c.Query("active") == "true" {
		active := services[:0]
		for _, svc := range services {
			if svc.IsActive {
				active = append(active, svc)
			}
		}
		services = active
	}

	c.JSON(http.StatusOK, services)
}

// Get retrieves a specific service by ID
func (sc *ServiceController) Get(c *gin.Context) {
	service, err := sc.Store.GetService(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// Update updates an existing service. There is no delete: bills and
// appointments keep referencing old services, so retiring one means setting
// isActive to false.
func (sc *ServiceController) Update(c *gin.Context) {
	service, err := sc.Store.GetService(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := sc.Store.UpdateService(service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}
