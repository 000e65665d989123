package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NatureActivity is a read-only catalog entry; no write path exists for it.
type NatureActivity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
