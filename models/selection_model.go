package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedClass is a student's pending intent to enroll in a named class.
// The (studentEmail, className) pair is unique; the document is removed either
// explicitly or when a payment completes for it.
type SelectedClass struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName      string             `bson:"className" json:"className"`
	StudentEmail   string             `bson:"studentEmail" json:"studentEmail"`
	StudentName    string             `bson:"studentName,omitempty" json:"studentName,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	AvailableSeats int                `bson:"availableSeats,omitempty" json:"availableSeats,omitempty"`
}
