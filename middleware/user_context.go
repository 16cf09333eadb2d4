package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UserContextMiddleware resolves the acting user from the X-User-ID header
// set by the gateway. Requests without one fall back to the configured
// placeholder identity, which keeps unauthenticated and local development
// flows working against the same routes.
func UserContextMiddleware(defaultUserID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}
