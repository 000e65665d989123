package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/handlers"
)

func ClassRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/classes/approvedclasses", h.GetApprovedClasses)
	app.Get("/classes/studentselected", h.GetSelectedClasses)
	app.Get("/classes/enrolledclasses", h.GetEnrolledClasses)
	app.Get("/classes", h.GetClasses)
	app.Post("/classes", h.CreateClass)

	app.Put("/classes/approved/:name", h.UpdateSeats)
	app.Patch("/classes/approved/:id", h.ApproveClass)
	app.Patch("/classes/denied/:id", h.DenyClass)
	app.Patch("/classes/feedback/:id", h.GiveFeedback)

	app.Post("/classes/studentselected", h.SelectClass)
	app.Delete("/classes/studentselected/:id", h.RemoveSelection)
}
