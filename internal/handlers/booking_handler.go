package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mhrakib/aircnc-api/internal/models"
)

func (h *Handler) GetGuestBookings(c *gin.Context) {
	email := c.Param("email")

	bookings, err := h.Bookings.FindByGuestEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetHostBookings(c *gin.Context) {
	email := c.Param("email")

	bookings, err := h.Bookings.FindByHostEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking inserts the booking and then fires two confirmation mails,
// one to the guest and one to the host. The mails never block or fail the
// response; a booking stands even if both sends are lost.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Bookings.Insert(c.Request.Context(), booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		h.Mail.Send(
			"Booking Successful!",
			fmt.Sprintf("Booking Id: %s, TransactionId: %s", insertedID.Hex(), booking.TransactionID),
			booking.Guest.Email,
		)
		h.Mail.Send(
			"Your room got booked!",
			fmt.Sprintf("Booking Id: %s, TransactionId: %s. Check dashboard for more info", insertedID.Hex(), booking.TransactionID),
			booking.Host,
		)
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	result, err := h.Bookings.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}
