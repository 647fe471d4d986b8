package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mhrakib/aircnc-api/internal/models"
)

type mongoRoomStore struct {
	col *mongo.Collection
}

func NewRoomStore(db *mongo.Database) RoomStore {
	return &mongoRoomStore{col: db.Collection("rooms")}
}

func (s *mongoRoomStore) All(ctx context.Context) ([]models.Room, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := make([]models.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *mongoRoomStore) FindByID(ctx context.Context, id string) (*models.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var room models.Room
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *mongoRoomStore) Insert(ctx context.Context, room models.Room) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, room)
}

func (s *mongoRoomStore) Upsert(ctx context.Context, id string, room models.Room) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	room.ID = primitive.NilObjectID
	update := bson.M{"$set": room}
	opts := options.Update().SetUpsert(true)
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
}

func (s *mongoRoomStore) SetBooked(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"booked": booked}}
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
}

func (s *mongoRoomStore) FindByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	cursor, err := s.col.Find(ctx, bson.M{"host.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := make([]models.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *mongoRoomStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}
