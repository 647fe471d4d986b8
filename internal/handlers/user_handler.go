package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhrakib/aircnc-api/internal/models"
)

// SaveUser upserts a user keyed by the email path parameter. Saving the
// same address twice updates the existing record.
func (h *Handler) SaveUser(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Users.Upsert(c.Request.Context(), email, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserRole returns the bare role value, or null when the user is
// unknown or has no role set.
func (h *Handler) GetUserRole(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil || user.Role == "" {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, user.Role)
}

// UpdateUserRole sets the role field from body.data.
func (h *Handler) UpdateUserRole(c *gin.Context) {
	email := c.Param("email")

	var req struct {
		Data string `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Users.SetRole(c.Request.Context(), email, req.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		return
	}

	c.JSON(http.StatusOK, result)
}
