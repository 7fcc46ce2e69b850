package handlers

import (
	"github.com/gofiber/fiber/v2"

	"coursemaster/database"
)

// HandleCheckHealth reports process liveness and store reachability
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	status := "ok"
	if err := store.HealthCheck(); err != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{"status": status})
}
