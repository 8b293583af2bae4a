package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajneema/curiousdevs0.1/internal/middleware"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/service"
)

func (h HandlerSet) ListProjects(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	projects, err := h.projectService.ListFor(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	c.JSON(http.StatusOK, projects)
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	ServiceType string `json:"service_type"`
	Description string `json:"description" binding:"required"`
}

func (h HandlerSet) CreateProject(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), user.ID, service.CreateProjectInput{
		Title:       req.Title,
		ServiceType: req.ServiceType,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project created",
		"project": project,
	})
}

func (h HandlerSet) ProjectDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

type updateProjectRequest struct {
	Status             *string        `json:"status"`
	TechStack          []string       `json:"tech_stack"`
	ProjectLeadID      *string        `json:"project_lead_id"`
	AssignedTeam       []string       `json:"assigned_team"`
	ProgressPercentage *int           `json:"progress_percentage"`
	DemoLink           *string        `json:"demo_link"`
	PaymentLink        *string        `json:"payment_link"`
	PaymentStatus      *string        `json:"payment_status"`
	Phases             []models.Phase `json:"phases"`
	ProjectAmount      *float64       `json:"project_amount"`
	PaidAmount         *float64       `json:"paid_amount"`
}

func (h HandlerSet) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), service.UpdateProjectInput{
		Status:             req.Status,
		TechStack:          req.TechStack,
		ProjectLeadID:      req.ProjectLeadID,
		AssignedTeam:       req.AssignedTeam,
		ProgressPercentage: req.ProgressPercentage,
		DemoLink:           req.DemoLink,
		PaymentLink:        req.PaymentLink,
		PaymentStatus:      req.PaymentStatus,
		Phases:             req.Phases,
		ProjectAmount:      req.ProjectAmount,
		PaidAmount:         req.PaidAmount,
	})
	if err != nil {
		h.renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project updated",
		"project": project,
	})
}

type sendMessageRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h HandlerSet) SendProjectMessage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.projectService.SendMessage(c.Request.Context(), user, req.ProjectID, req.Message); err != nil {
		h.renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message sent"})
}

func (h HandlerSet) ListProjectMessages(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	messages, err := h.projectService.ListMessages(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.renderProjectError(c, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, messages)
}

func (h HandlerSet) ProcessProjectPayment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	paidAmount, err := h.projectService.ProcessPayment(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNothingDue) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.renderProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "Payment processed",
		"paid_amount": paidAmount,
	})
}

func (h HandlerSet) renderProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
	case errors.Is(err, service.ErrProjectAccess):
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed to access this project"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
