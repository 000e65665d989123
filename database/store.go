package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadyExists reports that an idempotent insert found a document with the
// same natural key. Callers translate it into an informational reply, not a
// failure.
var ErrAlreadyExists = errors.New("document already exists")

// Store bundles the five collection stores. It is built once at startup and
// passed explicitly to handlers and jobs.
type Store struct {
	Users      *UserStore
	Classes    *ClassStore
	Selections *SelectionStore
	Payments   *PaymentStore
	Natures    *NatureStore
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		Users:      &UserStore{col: db.Collection("users")},
		Classes:    &ClassStore{col: db.Collection("classes")},
		Selections: &SelectionStore{col: db.Collection("studentsclasses")},
		Payments:   &PaymentStore{col: db.Collection("payments")},
		Natures:    &NatureStore{col: db.Collection("natureActivities")},
	}
}
