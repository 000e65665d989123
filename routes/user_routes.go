package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/handlers"
)

func UserRoutes(app *fiber.App, h *handlers.Handler) {
	// The static instructors path is registered ahead of the :email parameter.
	app.Get("/users/instructors", h.GetInstructors)
	app.Get("/users", h.GetUsers)
	app.Get("/users/:email", h.GetUserByEmail)
	app.Post("/users", h.CreateUser)

	app.Patch("/users/admin/:id", h.MakeAdmin)
	app.Patch("/users/instructor/:id", h.MakeInstructor)
}
