package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent converts the posted price to cents and asks the
// gateway for a card intent. A missing or zero price is a client error.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
		return
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), int64(req.Price*100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
