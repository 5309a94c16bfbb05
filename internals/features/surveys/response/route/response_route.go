package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoaportal_backend/internals/features/surveys/response/controller"
)

// ResponseAdminRoutes mounts the review dashboard endpoints. The group is
// JWT-protected; privilege is decided per request by admin resolution.
func ResponseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	rc := controller.NewResponseController(db)

	admin.Get("/responses", rc.GetResponses)
	admin.Get("/responses/:id", rc.GetResponse)
	admin.Put("/responses/:id/review", rc.UpdateReview)
	admin.Put("/responses/:id/pdf", rc.UpdatePDF)
}
