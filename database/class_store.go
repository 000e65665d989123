package database

import (
	"context"
	"errors"

	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassStore struct {
	col *mongo.Collection
}

// classSortByEnrolled orders listings most-enrolled first.
var classSortByEnrolled = bson.D{{Key: "enrolled", Value: -1}}

// Find returns classes matching the exact-match filter, most-enrolled first.
func (s *ClassStore) Find(ctx context.Context, filter bson.M) ([]models.Class, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(classSortByEnrolled)
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassStore) findByName(ctx context.Context, className string) (*models.Class, error) {
	var class models.Class
	err := s.col.FindOne(ctx, bson.M{"className": className}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// Insert is idempotent on className.
func (s *ClassStore) Insert(ctx context.Context, class models.Class) (primitive.ObjectID, error) {
	existing, err := s.findByName(ctx, class.ClassName)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, ErrAlreadyExists
	}

	res, err := s.col.InsertOne(ctx, class)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrAlreadyExists
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateSeats syncs the seat counters of a class addressed by its name.
func (s *ClassStore) UpdateSeats(ctx context.Context, className string, availableSeats, enrolled int) (matched, modified int64, err error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"className": className}, bson.M{"$set": bson.M{
		"availableSeats": availableSeats,
		"enrolled":       enrolled,
	}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *ClassStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (matched, modified int64, err error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *ClassStore) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (matched, modified int64, err error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
