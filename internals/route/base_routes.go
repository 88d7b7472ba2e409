package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "quizku_backend/internals/databases"
)

var startTime = time.Now()

// BaseRoutes: health check + static upload files.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if err := database.Ping(db); err != nil {
			dbStatus = "down"
		}
		status := fiber.StatusOK
		if dbStatus != "ok" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
			"database": dbStatus,
		})
	})

	app.Static("/static/uploads", "./static/uploads")
}
