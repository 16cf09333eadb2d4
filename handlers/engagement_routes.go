// handlers/engagement_routes.go
package handlers

import (
	"errors"
	"strconv"

	"mindful-progress-system/middleware"
	"mindful-progress-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupEngagementRoutes registers the event submission and progress read
// surface. The gateway forwards paths like /api/v1/engagement/events ->
// /events; user identity arrives via X-User-ID and falls back to the
// configured placeholder.
func SetupEngagementRoutes(app *fiber.App, svc *services.EngagementService) {
	securedGroup := app.Group("/", middleware.UserContextMiddleware(svc.Cfg.DefaultUserID))

	securedGroup.Post("/events", func(c *fiber.Ctx) error {
		var req services.SubmitEventRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.UserID == "" {
			req.UserID = c.Locals("user_id").(string)
		}

		res, err := svc.SubmitEvent(req)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": verr.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to record event",
				"cause": err.Error(),
			})
		}
		// Cap denials come back here too — they are a 200 with success:false.
		return c.JSON(res)
	})

	securedGroup.Get("/user/progress", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		progress, err := svc.Progress(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read progress",
				"cause": err.Error(),
			})
		}
		return c.JSON(progress)
	})

	securedGroup.Get("/user/progress/history", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		page, _ := strconv.Atoi(c.Query("page", "1"))
		size, _ := strconv.Atoi(c.Query("size", "20"))
		history, err := svc.EventHistory(userID, page, size)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get history",
				"cause": err.Error(),
			})
		}
		return c.JSON(history)
	})

	// Admin endpoints — support tooling, user identity still required.
	adminGroup := app.Group("/admin", middleware.UserContextMiddleware(svc.Cfg.DefaultUserID))

	adminGroup.Get("/users/:userId/progress", func(c *fiber.Ctx) error {
		targetID := c.Params("userId")
		if targetID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "userId is required",
			})
		}
		progress, err := svc.Progress(targetID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read progress",
				"cause": err.Error(),
			})
		}
		return c.JSON(progress)
	})
}
