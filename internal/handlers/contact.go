package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajneema/curiousdevs0.1/internal/ids"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

type contactRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func (h HandlerSet) CreateContactRequest(c *gin.Context) {
	var req contactRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	contact := models.ContactRequest{
		ID:      ids.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.contacts.Create(c.Request.Context(), contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h HandlerSet) ListContactRequests(c *gin.Context) {
	contacts, err := h.contacts.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if contacts == nil {
		contacts = []models.ContactRequest{}
	}

	c.JSON(http.StatusOK, contacts)
}
