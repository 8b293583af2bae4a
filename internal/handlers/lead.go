package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/service"
)

type createLeadRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Mobile         string `json:"mobile" binding:"required"`
	Project        string `json:"project"`
	ProjectType    string `json:"project_type"`
	ProjectDetails string `json:"project_details"`
}

func (h HandlerSet) CreateLead(c *gin.Context) {
	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	_, err := h.leadService.Create(c.Request.Context(), service.CreateLeadInput{
		Name:           req.Name,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Project:        req.Project,
		ProjectType:    req.ProjectType,
		ProjectDetails: req.ProjectDetails,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateLead) {
			c.JSON(http.StatusOK, gin.H{"status": "failed", "message": "Lead already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Lead created successfully"})
}

func (h HandlerSet) ListLeads(c *gin.Context) {
	leads, err := h.leadService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}

	c.JSON(http.StatusOK, leads)
}
