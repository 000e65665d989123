package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/sportsmania/sports_mania_server/auth"
	config "github.com/sportsmania/sports_mania_server/configs"
	"github.com/sportsmania/sports_mania_server/database"
	"github.com/sportsmania/sports_mania_server/handlers"
	"github.com/sportsmania/sports_mania_server/jobs"
	"github.com/sportsmania/sports_mania_server/payments"
	"github.com/sportsmania/sports_mania_server/routes"
	"github.com/sportsmania/sports_mania_server/services"
)

func main() {
	db := database.ConnectDB()
	database.EnsureIndexes(db)

	store := database.NewStore(db)
	tokens := auth.NewTokenService()
	enrollment := services.NewEnrollmentService(store.Payments, store.Selections)

	h := &handlers.Handler{
		Users:        store.Users,
		Classes:      store.Classes,
		Selections:   store.Selections,
		Payments:     store.Payments,
		Natures:      store.Natures,
		Tokens:       tokens,
		Enrollment:   enrollment,
		CreateIntent: payments.CreatePaymentIntent,
	}

	c := cron.New()
	c.AddFunc("*/10 * * * *", func() {
		jobs.ReconcileEnrollments(store.Payments, store.Selections)
	})
	go c.Start()
	log.Println("✅ Cron job for enrollment reconciliation scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Sports Mania",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Sports Mania is playing!")
	})

	routes.AuthRoutes(app, h)
	routes.UserRoutes(app, h)
	routes.ClassRoutes(app, h)
	routes.NatureRoutes(app, h)
	routes.PaymentRoutes(app, h)

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("✅ Sports Mania listening on port: %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
