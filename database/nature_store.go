package database

import (
	"context"

	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NatureStore is read-only; the catalog has no write path in this service.
type NatureStore struct {
	col *mongo.Collection
}

func (s *NatureStore) FindAll(ctx context.Context) ([]models.NatureActivity, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var activities []models.NatureActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
