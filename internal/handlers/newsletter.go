package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h HandlerSet) SubscribeNewsletter(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := h.subscribers.Exists(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"status": "failed", "message": "Already subscribed"})
		return
	}

	if err := h.subscribers.Subscribe(c.Request.Context(), email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Subscribed successfully"})
}
