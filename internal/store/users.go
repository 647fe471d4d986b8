package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mhrakib/aircnc-api/internal/models"
)

type mongoUserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) UserStore {
	return &mongoUserStore{col: db.Collection("users")}
}

func (s *mongoUserStore) Upsert(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)
	return s.col.UpdateOne(ctx, filter, update, opts)
}

func (s *mongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}
	return s.col.UpdateOne(ctx, filter, update)
}
