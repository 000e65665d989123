package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/sportsmania/sports_mania_server/configs"
)

// Protected gates a route behind a bearer token: a missing Authorization
// header is a 401, an unverifiable or expired token a 403. On success the
// decoded token is attached to the request locals under "user".
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("ACCESS_TOKEN_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": true, "message": "Authorization required"})
	}
	return c.Status(fiber.StatusForbidden).
		JSON(fiber.Map{"error": true, "message": "Invalid token"})
}

// Claims returns the decoded identity claims attached by Protected. Handlers
// that enforce an access policy read them from here; none do yet.
func Claims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// ClaimedEmail returns the email claim of the authenticated caller, or ""
// when the request is unauthenticated.
func ClaimedEmail(c *fiber.Ctx) string {
	claims, ok := Claims(c)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
