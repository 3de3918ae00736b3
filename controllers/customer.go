// controllers/customer.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"beautyart-backend/models"
	"beautyart-backend/store"
	"beautyart-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name        string     `json:"name" binding:"required"`
	Phone       string     `json:"phone" binding:"required"`
	Email       string     `json:"email" binding:"omitempty,email"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     string     `json:"address"`
	Notes       string     `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address"`
	Notes       *string    `json:"notes"`
}

type CustomerController struct {
	Store *store.Store
}

func NewCustomerController(s *store.Store) *CustomerController {
	return &CustomerController{Store: s}
}

// Create registers a new customer.
func (cc *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	for _, existing := range cc.Store.Customers() {
		if existing.Phone == input.Phone {
			utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
			return
		}
	}

	customer := models.Customer{
		ID:          cc.Store.GenerateID(),
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		DateOfBirth: input.DateOfBirth,
		Address:     input.Address,
		Notes:       input.Notes,
		CreatedAt:   time.Now(),
	}

	cc.Store.AddCustomer(customer)

	c.JSON(http.StatusCreated, customer)
}

// List retrieves all customers, optionally narrowed by ?search= on name,
// phone, and email.
func (cc *CustomerController) List(c *gin.Context) {
	customers := cc.Store.Customers()

	if term := strings.ToLower(strings.TrimSpace(c.Query("search"))); term != "" {
		matched := customers[:0]
		for _, cust := range customers {
			if strings.Contains(strings.ToLower(cust.Name), term) ||
				strings.Contains(strings.ToLower(cust.Phone), term) ||
				strings.Contains(strings.ToLower(cust.Email), term) {
				matched = append(matched, cust)
			}
		}
		customers = matched
	}

	c.JSON(http.StatusOK, customers)
}

// Get retrieves a specific customer by ID
func (cc *CustomerController) Get(c *gin.Context) {
	customer, err := cc.Store.GetCustomer(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Update updates an existing customer. Visit and spend aggregates are not
// editable here; only bill creation moves them.
func (cc *CustomerController) Update(c *gin.Context) {
	customer, err := cc.Store.GetCustomer(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if customer.Phone != *input.Phone {
			for _, existing := range cc.Store.Customers() {
				if existing.Phone == *input.Phone {
					utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
					return
				}
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.DateOfBirth != nil {
		customer.DateOfBirth = input.DateOfBirth
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := cc.Store.UpdateCustomer(customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}
