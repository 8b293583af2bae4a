package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pankajneema/curiousdevs0.1/internal/middleware"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/service"
)

func (h HandlerSet) ListMyBills(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	bills, err := h.billingService.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}

	c.JSON(http.StatusOK, bills)
}

func (h HandlerSet) ListAllBills(c *gin.Context) {
	bills, err := h.billingService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}

	c.JSON(http.StatusOK, bills)
}

type createBillRequest struct {
	ProjectID string    `json:"project_id" binding:"required"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	DueDate   time.Time `json:"due_date" binding:"required"`
}

func (h HandlerSet) CreateBill(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	bill, err := h.billingService.Create(c.Request.Context(), service.CreateBillInput{
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bill created",
		"bill":    bill,
	})
}

func (h HandlerSet) PayBill(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	err := h.billingService.MarkPaid(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBillNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Bill not found"})
		case errors.Is(err, service.ErrBillAccess):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed to pay this bill"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Bill marked as paid"})
}
