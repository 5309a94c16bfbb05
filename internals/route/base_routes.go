package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "hoaportal_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes registers the root and health endpoints.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "HOA Portal API is running 🚀", fiber.Map{
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		code := fiber.StatusOK
		if dbStatus == "down" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
