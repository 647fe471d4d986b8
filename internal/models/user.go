package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by email; the upsert route never duplicates a record for
// the same address. Role is an opaque string ("guest", "host", "admin").
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
