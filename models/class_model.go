package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// Class is an instructor's course listing. ClassName is the natural key.
// Status moves pending -> approved|denied; nothing transitions back to pending.
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName       string             `bson:"className" json:"className"`
	InstructorName  string             `bson:"instructorName" json:"instructorName"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Enrolled        int                `bson:"enrolled" json:"enrolled"`
	Price           float64            `bson:"price" json:"price"`
	Status          string             `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
