package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/auth"
)

// IssueToken signs the submitted identity payload into a one-hour session
// token. The payload is taken as-is apart from requiring an email claim.
func (h *Handler) IssueToken(c *fiber.Ctx) error {
	var identity map[string]interface{}
	if err := c.BodyParser(&identity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Cannot parse JSON"})
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		if errors.Is(err, auth.ErrMissingEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Email is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": token})
}
