package jobs

import (
	"context"
	"log"
	"time"

	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentLister interface {
	Find(ctx context.Context, filter bson.M) ([]models.Payment, error)
}

type SelectionStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.SelectedClass, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ReconcileEnrollments clears selections that a recorded payment already
// settled. The enrollment workflow's insert-then-delete spans no transaction,
// so a crash between the two steps leaves a paid-for selection behind; this
// job makes that gap detectable and repairs it.
func ReconcileEnrollments(payments PaymentLister, selections SelectionStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	paid, err := payments.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("⚠️ Enrollment reconciliation: failed to list payments: %v", err)
		return
	}

	settled := make(map[primitive.ObjectID]bool, len(paid))
	for _, p := range paid {
		if !p.ClassID.IsZero() {
			settled[p.ClassID] = true
		}
	}
	if len(settled) == 0 {
		return
	}

	pending, err := selections.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("⚠️ Enrollment reconciliation: failed to list selections: %v", err)
		return
	}

	var cleared int64
	for _, sel := range pending {
		if !settled[sel.ID] {
			continue
		}
		deleted, err := selections.DeleteByID(ctx, sel.ID)
		if err != nil {
			log.Printf("⚠️ Enrollment reconciliation: failed to clear selection %s: %v", sel.ID.Hex(), err)
			continue
		}
		cleared += deleted
	}

	if cleared > 0 {
		log.Printf("✅ Enrollment reconciliation cleared %d stale selection(s)", cleared)
	}
}
