package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueToken signs whatever user object was posted and hands back a
// short-lived bearer token. No claims validation happens here.
func (h *Handler) IssueToken(c *gin.Context) {
	var user map[string]interface{}
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
