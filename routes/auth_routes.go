package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	app.Post("/jwt", h.IssueToken)
}
