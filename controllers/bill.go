// controllers/bill.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"beautyart-backend/billing"
	"beautyart-backend/models"
	"beautyart-backend/query"
	"beautyart-backend/store"
	"beautyart-backend/utils"

	"github.com/gin-gonic/gin"
)

// BillItemInput defines the structure for a bill line item. Price overrides
// the catalog price when set; appointment-originated drafts carry the
// appointment's snapshot price this way, while lines picked straight from the
// catalog leave it empty and get the service's current price.
type BillItemInput struct {
	ServiceID string   `json:"serviceId" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
	Price     *float64 `json:"price" binding:"omitempty,min=0"`
}

// CreateBillInput defines the expected JSON structure for creating a bill.
// Discount and Tax are percentages, validated by the derivation engine.
type CreateBillInput struct {
	AppointmentID string               `json:"appointmentId"`
	CustomerID    string               `json:"customerId"`
	CustomerName  string               `json:"customerName"`
	Items         []BillItemInput      `json:"items" binding:"required,min=1,dive"`
	Discount      float64              `json:"discount"`
	Tax           float64              `json:"tax"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card online"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"required,oneof=pending paid partial refunded"`
	Date          *time.Time           `json:"date"`
	Notes         string               `json:"notes"`
}

// UpdateBillPaymentInput carries a payment status change for an existing bill.
type UpdateBillPaymentInput struct {
	PaymentStatus models.PaymentStatus  `json:"paymentStatus" binding:"required,oneof=pending paid partial refunded"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash card online"`
}

type BillController struct {
	Store             *store.Store
	DefaultTaxPercent float64
}

func NewBillController(s *store.Store, defaultTaxPercent float64) *BillController {
	return &BillController{Store: s, DefaultTaxPercent: defaultTaxPercent}
}

// Create validates the draft, derives totals, stores the bill, and bumps the
// customer's visit and spend aggregates.
func (bc *BillController) Create(c *gin.Context) {
	var input CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	haveCustomer := false
	if input.CustomerID != "" {
		var err error
		customer, err = bc.Store.GetCustomer(input.CustomerID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			return
		}
		haveCustomer = true
	} else if input.CustomerName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer name is required")
		return
	}

	if input.AppointmentID != "" {
		if _, err := bc.Store.GetAppointment(input.AppointmentID); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Appointment not found")
			return
		}
	}

	lines := make([]billing.LineInput, 0, len(input.Items))
	for _, item := range input.Items {
		service, err := bc.Store.GetService(item.ServiceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+item.ServiceID)
			return
		}
		line := billing.LineFromService(service, item.Quantity)
		if item.Price != nil {
			line.Price = *item.Price
		}
		lines = append(lines, line)
	}

	totals, err := billing.ComputeTotals(lines, input.Discount, input.Tax)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	billDate := time.Now()
	if input.Date != nil {
		billDate = *input.Date
	}

	customerName := input.CustomerName
	if haveCustomer {
		customerName = customer.Name
	}

	bill := models.Bill{
		ID:            bc.Store.GenerateID(),
		BillNumber:    "BILL-" + billDate.Format("20060102") + "-" + utils.GenerateRandomString(6),
		AppointmentID: input.AppointmentID,
		CustomerID:    input.CustomerID,
		CustomerName:  customerName,
		Services:      billing.BuildItems(lines),
		Subtotal:      totals.Subtotal,
		Tax:           totals.TaxAmount,
		Discount:      totals.DiscountAmount,
		Total:         totals.Total,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
		Date:          billDate,
		Notes:         input.Notes,
	}

	bc.Store.AddBill(bill)

	// Update customer stats
	if haveCustomer {
		customer.TotalVisits++
		customer.TotalSpent += bill.Total
		customer.LastVisit = &billDate
		if err := bc.Store.UpdateCustomer(customer); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	c.JSON(http.StatusCreated, bill)
}

// List retrieves bills filtered by ?status= and ?search=, sorted descending
// by date.
func (bc *BillController) List(c *gin.Context) {
	status := c.DefaultQuery("status", query.StatusAll)
	search := c.Query("search")

	bills := query.FilterBills(bc.Store.Bills(), status, search)

	c.JSON(http.StatusOK, bills)
}

// Get retrieves a specific bill by ID
func (bc *BillController) Get(c *gin.Context) {
	bill, err := bc.Store.GetBill(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		return
	}

	c.JSON(http.StatusOK, bill)
}

// Draft returns a prefilled, unsaved bill draft for a completed appointment:
// one line at the appointment's snapshot price and the default tax applied.
func (bc *BillController) Draft(c *gin.Context) {
	appointment, err := bc.Store.GetAppointment(c.Param("appointmentId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	draft, err := billing.DraftFromAppointment(appointment, bc.DefaultTaxPercent, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build bill draft")
		}
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdatePayment changes the payment status (and optionally method) of a bill.
func (bc *BillController) UpdatePayment(c *gin.Context) {
	var input UpdateBillPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bill, err := bc.Store.GetBill(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		return
	}

	bill.PaymentStatus = input.PaymentStatus
	if input.PaymentMethod != nil {
		bill.PaymentMethod = *input.PaymentMethod
	}

	if err := bc.Store.UpdateBill(bill); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update bill")
		return
	}

	c.JSON(http.StatusOK, bill)
}
