package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhrakib/aircnc-api/internal/models"
)

// The stores are thin wrappers over one collection each. Handlers perform
// exactly one store call per request and return the raw driver result, so
// the write methods expose *mongo.UpdateResult and friends directly.

type UserStore interface {
	Upsert(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error)
	All(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
}

type RoomStore interface {
	All(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (*models.Room, error)
	Insert(ctx context.Context, room models.Room) (*mongo.InsertOneResult, error)
	Upsert(ctx context.Context, id string, room models.Room) (*mongo.UpdateResult, error)
	SetBooked(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error)
	FindByHostEmail(ctx context.Context, email string) ([]models.Room, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type BookingStore interface {
	Insert(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error)
	FindByGuestEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByHostEmail(ctx context.Context, email string) ([]models.Booking, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
