package handlers

import (
	"errors"
	"net/http"

	"taskvault/internal/logger"
	"taskvault/internal/repository"

	"github.com/gin-gonic/gin"
)

// Me returns the profile of the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "Not Found",
				"message": "User not found",
			})
			return
		}
		logger.Error("load user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "Success",
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}
