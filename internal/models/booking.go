package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Guest struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Booking records a guest's reservation. Host is a flat email string while
// Guest is a subdocument; the booking queries depend on that asymmetry.
// Inserting a booking does not flip the room's booked flag, that update is
// invoked separately through the room status route.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Guest         Guest              `bson:"guest,omitempty" json:"guest,omitempty"`
	Host          string             `bson:"host,omitempty" json:"host,omitempty"`
	RoomID        string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	From          string             `bson:"from,omitempty" json:"from,omitempty"`
	To            string             `bson:"to,omitempty" json:"to,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
