package handlers

import (
	"github.com/mhrakib/aircnc-api/internal/auth"
	"github.com/mhrakib/aircnc-api/internal/services"
	"github.com/mhrakib/aircnc-api/internal/store"
)

// Handler carries every dependency a route needs. Each route method does
// one store or gateway call and returns its raw result.
type Handler struct {
	Users    store.UserStore
	Rooms    store.RoomStore
	Bookings store.BookingStore
	Tokens   *auth.TokenService
	Mail     services.Mailer
	Payments services.IntentCreator
}

func NewHandler(users store.UserStore, rooms store.RoomStore, bookings store.BookingStore,
	tokens *auth.TokenService, mail services.Mailer, payments services.IntentCreator) *Handler {
	return &Handler{
		Users:    users,
		Rooms:    rooms,
		Bookings: bookings,
		Tokens:   tokens,
		Mail:     mail,
		Payments: payments,
	}
}
