package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetNatureActivities(c *fiber.Ctx) error {
	activities, err := h.Natures.FindAll(c.Context())
	if err != nil {
		return dbError(c)
	}
	return c.JSON(activities)
}
