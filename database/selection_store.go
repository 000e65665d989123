package database

import (
	"context"
	"errors"

	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SelectionStore struct {
	col *mongo.Collection
}

func (s *SelectionStore) Find(ctx context.Context, filter bson.M) ([]models.SelectedClass, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var selections []models.SelectedClass
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

// Insert is idempotent on the (studentEmail, className) pair.
func (s *SelectionStore) Insert(ctx context.Context, selection models.SelectedClass) (primitive.ObjectID, error) {
	var existing models.SelectedClass
	err := s.col.FindOne(ctx, bson.M{
		"className":    selection.ClassName,
		"studentEmail": selection.StudentEmail,
	}).Decode(&existing)
	if err == nil {
		return primitive.NilObjectID, ErrAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, err
	}

	res, err := s.col.InsertOne(ctx, selection)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrAlreadyExists
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *SelectionStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
