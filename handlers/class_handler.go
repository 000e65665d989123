package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/database"
	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
)

type CreateClassRequest struct {
	ClassName       string  `json:"className" validate:"required"`
	InstructorName  string  `json:"instructorName" validate:"required"`
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	Image           string  `json:"image,omitempty"`
	AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	Status          string  `json:"status,omitempty"`
}

type UpdateSeatsRequest struct {
	AvailableSeats int `json:"availableSeats" validate:"gte=0"`
	Enrolled       int `json:"enrolled" validate:"gte=0"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// GetClasses lists classes most-enrolled first, optionally narrowed to one
// instructor via the email query parameter.
func (h *Handler) GetClasses(c *fiber.Ctx) error {
	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter["instructorEmail"] = email
	}

	classes, err := h.Classes.Find(c.Context(), filter)
	if err != nil {
		return dbError(c)
	}
	return c.JSON(classes)
}

func (h *Handler) GetApprovedClasses(c *fiber.Ctx) error {
	classes, err := h.Classes.Find(c.Context(), bson.M{"status": models.ClassStatusApproved})
	if err != nil {
		return dbError(c)
	}
	return c.JSON(classes)
}

// CreateClass is idempotent on className. New submissions start out pending
// unless the instructor's client says otherwise.
func (h *Handler) CreateClass(c *fiber.Ctx) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	status := req.Status
	if status == "" {
		status = models.ClassStatusPending
	}

	id, err := h.Classes.Insert(c.Context(), models.Class{
		ClassName:       req.ClassName,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Image:           req.Image,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
		Status:          status,
	})
	if errors.Is(err, database.ErrAlreadyExists) {
		return c.JSON(fiber.Map{"message": "Class already exists"})
	}
	if err != nil {
		return dbError(c)
	}

	return c.JSON(fiber.Map{"insertedId": id})
}

// UpdateSeats syncs a class's seat counters, addressed by class name.
func (h *Handler) UpdateSeats(c *fiber.Ctx) error {
	var req UpdateSeatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	matched, modified, err := h.Classes.UpdateSeats(c.Context(), c.Params("name"), req.AvailableSeats, req.Enrolled)
	if err != nil {
		return dbError(c)
	}
	return updateResult(c, matched, modified)
}

func (h *Handler) ApproveClass(c *fiber.Ctx) error {
	return h.transition(c, models.ClassStatusApproved)
}

func (h *Handler) DenyClass(c *fiber.Ctx) error {
	return h.transition(c, models.ClassStatusDenied)
}

func (h *Handler) transition(c *fiber.Ctx, status string) error {
	id, err := paramObjectID(c)
	if err != nil {
		return invalidID(c)
	}

	matched, modified, err := h.Classes.SetStatus(c.Context(), id, status)
	if err != nil {
		return dbError(c)
	}
	return updateResult(c, matched, modified)
}

func (h *Handler) GiveFeedback(c *fiber.Ctx) error {
	id, err := paramObjectID(c)
	if err != nil {
		return invalidID(c)
	}

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	matched, modified, err := h.Classes.SetFeedback(c.Context(), id, req.Feedback)
	if err != nil {
		return dbError(c)
	}
	return updateResult(c, matched, modified)
}
