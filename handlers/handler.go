package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/auth"
	"github.com/sportsmania/sports_mania_server/models"
	"github.com/sportsmania/sports_mania_server/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type UserStore interface {
	FindAll(ctx context.Context, filter bson.M) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error)
}

type ClassStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.Class, error)
	Insert(ctx context.Context, class models.Class) (primitive.ObjectID, error)
	UpdateSeats(ctx context.Context, className string, availableSeats, enrolled int) (matched, modified int64, err error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (matched, modified int64, err error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (matched, modified int64, err error)
}

type SelectionStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.SelectedClass, error)
	Insert(ctx context.Context, selection models.SelectedClass) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type PaymentStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.Payment, error)
}

type NatureStore interface {
	FindAll(ctx context.Context) ([]models.NatureActivity, error)
}

// Handler carries every dependency the HTTP layer needs. It is assembled once
// in main and handed to the route registrars; no package-level state.
type Handler struct {
	Users      UserStore
	Classes    ClassStore
	Selections SelectionStore
	Payments   PaymentStore
	Natures    NatureStore
	Tokens     *auth.TokenService
	Enrollment *services.EnrollmentService

	// CreateIntent calls the payment provider; swapped for a fake in tests.
	CreateIntent func(price float64) (string, error)
}

func paramObjectID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid id format"})
}

func dbError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Database error"})
}

func updateResult(c *fiber.Ctx, matched, modified int64) error {
	return c.JSON(fiber.Map{"matchedCount": matched, "modifiedCount": modified})
}
