package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/database"
	"github.com/sportsmania/sports_mania_server/models"
	"go.mongodb.org/mongo-driver/bson"
)

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.Users.FindAll(c.Context(), bson.M{})
	if err != nil {
		return dbError(c)
	}
	return c.JSON(users)
}

func (h *Handler) GetInstructors(c *fiber.Ctx) error {
	users, err := h.Users.FindAll(c.Context(), bson.M{"role": models.RoleInstructor})
	if err != nil {
		return dbError(c)
	}
	return c.JSON(users)
}

// GetUserByEmail replies with the matching user, or null when none exists;
// an absent document is not an error.
func (h *Handler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.Users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return dbError(c)
	}
	return c.JSON(user)
}

// CreateUser is idempotent on email: a repeat registration gets an
// informational message, not an error.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	id, err := h.Users.Insert(c.Context(), models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  req.Role,
	})
	if errors.Is(err, database.ErrAlreadyExists) {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}
	if err != nil {
		return dbError(c)
	}

	return c.JSON(fiber.Map{"insertedId": id})
}

func (h *Handler) MakeAdmin(c *fiber.Ctx) error {
	return h.promote(c, models.RoleAdmin)
}

func (h *Handler) MakeInstructor(c *fiber.Ctx) error {
	return h.promote(c, models.RoleInstructor)
}

func (h *Handler) promote(c *fiber.Ctx, role string) error {
	id, err := paramObjectID(c)
	if err != nil {
		return invalidID(c)
	}

	matched, modified, err := h.Users.SetRole(c.Context(), id, role)
	if err != nil {
		return dbError(c)
	}
	return updateResult(c, matched, modified)
}
