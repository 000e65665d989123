package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSelectionNotCleared reports the partial-failure case: the payment was
// recorded but the referenced selection could not be deleted. The stores span
// no transaction, so the gap is surfaced to the caller and repaired later by
// the reconciliation job.
var ErrSelectionNotCleared = errors.New("payment recorded but selection not cleared")

type PaymentRecorder interface {
	Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error)
}

type SelectionClearer interface {
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// EnrollmentService runs the one multi-step mutation in the system: record a
// payment, then release the student's pending selection for it.
type EnrollmentService struct {
	payments   PaymentRecorder
	selections SelectionClearer
}

func NewEnrollmentService(payments PaymentRecorder, selections SelectionClearer) *EnrollmentService {
	return &EnrollmentService{payments: payments, selections: selections}
}

type EnrollmentResult struct {
	PaymentID    primitive.ObjectID `json:"paymentId"`
	DeletedCount int64              `json:"deletedCount"`
}

// CompleteEnrollment inserts the payment and only then deletes the selection
// it references. Both results are returned; a delete failure after a
// successful insert comes back as ErrSelectionNotCleared with the payment id
// already set on the result.
func (s *EnrollmentService) CompleteEnrollment(ctx context.Context, payment models.Payment) (*EnrollmentResult, error) {
	paymentID, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	result := &EnrollmentResult{PaymentID: paymentID}

	deleted, err := s.selections.DeleteByID(ctx, payment.ClassID)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrSelectionNotCleared, err)
	}

	result.DeletedCount = deleted
	return result, nil
}
