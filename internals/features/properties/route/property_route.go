package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoaportal_backend/internals/features/properties/controller"
)

// PropertyRoutes mounts the read-only property panel endpoints.
func PropertyRoutes(api fiber.Router, db *gorm.DB) {
	pc := controller.NewPropertyController(db)

	api.Get("/properties", pc.GetProperties)
	api.Get("/properties/search", pc.SearchProperties)
	api.Get("/properties/:id", pc.GetProperty)
}
