package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhrakib/aircnc-api/internal/models"
)

type mongoBookingStore struct {
	col *mongo.Collection
}

func NewBookingStore(db *mongo.Database) BookingStore {
	return &mongoBookingStore{col: db.Collection("bookings")}
}

func (s *mongoBookingStore) Insert(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, booking)
}

func (s *mongoBookingStore) FindByGuestEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"guest.email": email})
}

// Bookings store the host as a flat email string, not a subdocument.
func (s *mongoBookingStore) FindByHostEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"host": email})
}

func (s *mongoBookingStore) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *mongoBookingStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}
