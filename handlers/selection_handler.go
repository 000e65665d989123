package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/database"
	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
)

type SelectClassRequest struct {
	ClassName      string  `json:"className" validate:"required"`
	StudentEmail   string  `json:"studentEmail" validate:"required,email"`
	StudentName    string  `json:"studentName,omitempty"`
	InstructorName string  `json:"instructorName,omitempty"`
	Image          string  `json:"image,omitempty"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"availableSeats,omitempty"`
}

// GetSelectedClasses lists pending selections, optionally narrowed to one
// student via the email query parameter.
func (h *Handler) GetSelectedClasses(c *fiber.Ctx) error {
	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter["studentEmail"] = email
	}

	selections, err := h.Selections.Find(c.Context(), filter)
	if err != nil {
		return dbError(c)
	}
	return c.JSON(selections)
}

// SelectClass is idempotent on the (studentEmail, className) pair.
func (h *Handler) SelectClass(c *fiber.Ctx) error {
	var req SelectClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	id, err := h.Selections.Insert(c.Context(), models.SelectedClass{
		ClassName:      req.ClassName,
		StudentEmail:   req.StudentEmail,
		StudentName:    req.StudentName,
		InstructorName: req.InstructorName,
		Image:          req.Image,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
	})
	if errors.Is(err, database.ErrAlreadyExists) {
		return c.JSON(fiber.Map{"message": "Class already selected"})
	}
	if err != nil {
		return dbError(c)
	}

	return c.JSON(fiber.Map{"insertedId": id})
}

func (h *Handler) RemoveSelection(c *fiber.Ctx) error {
	id, err := paramObjectID(c)
	if err != nil {
		return invalidID(c)
	}

	deleted, err := h.Selections.DeleteByID(c.Context(), id)
	if err != nil {
		return dbError(c)
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
