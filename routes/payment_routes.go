package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/handlers"
)

func PaymentRoutes(app *fiber.App, h *handlers.Handler) {
	app.Post("/create-payment-intent", h.CreatePaymentIntent)
	app.Post("/payments", h.CompletePayment)
}
