package database

import (
	"context"

	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentStore struct {
	col *mongo.Collection
}

// paymentSortByDate orders listings newest first.
var paymentSortByDate = bson.D{{Key: "date", Value: -1}}

// Find returns payments matching the exact-match filter, newest first.
func (s *PaymentStore) Find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(paymentSortByDate)
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Insert records a completed transaction. Payments carry no natural key and no
// duplicate check; the record is immutable once written.
func (s *PaymentStore) Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
