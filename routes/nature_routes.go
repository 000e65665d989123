package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/handlers"
)

func NatureRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/nature", h.GetNatureActivities)
}
