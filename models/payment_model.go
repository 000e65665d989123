package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an immutable record of a completed transaction. ClassID references
// the StudentSelection it settles, by id only.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Price         float64            `bson:"price" json:"price"`
	Date          time.Time          `bson:"date" json:"date"`
	ClassID       primitive.ObjectID `bson:"classId" json:"classId"`
	ClassName     string             `bson:"className" json:"className"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}
