package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminContextMiddleware extracts the staff identity a logged-in admin client
// sends with ledger listing requests and attaches it to the request context.
// Listing endpoints are staff-facing, so a missing identity is rejected.
func AdminContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Get("X-Admin-Username")
		if username == "" {
			log.Printf("[ADMIN_CTX] X-Admin-Username missing on staff route: %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-Admin-Username header",
			})
		}

		c.Locals("admin_username", username)
		c.Locals("admin_club", c.Get("X-Admin-Club"))

		return c.Next()
	}
}
