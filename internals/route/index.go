package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	propertyRoute "hoaportal_backend/internals/features/properties/route"
	surveyRoute "hoaportal_backend/internals/features/surveys/definition/route"
	responseRoute "hoaportal_backend/internals/features/surveys/response/route"
	authRoute "hoaportal_backend/internals/features/users/auth/route"
	personRoute "hoaportal_backend/internals/features/users/people/route"
	authmw "hoaportal_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Admin features live under
// /api/a and always pass through the auth middleware; privilege beyond
// authentication is decided per-request by the admin resolver.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	jwtGuard := authmw.AuthMiddleware(db)

	// 🔓 public (survey builder carries optional identity)
	authRoute.AuthRoutes(api, db)
	surveyRoute.SurveyRoutes(api, db)
	propertyRoute.PropertyRoutes(api, db)

	// 🔑 authenticated self-service
	personRoute.ProfileRoutes(api, db, jwtGuard)

	// 🛡️ admin dashboard
	admin := api.Group("/a", jwtGuard)
	personRoute.PeopleAdminRoutes(admin, db)
	responseRoute.ResponseAdminRoutes(admin, db)

	log.Println("[INFO] Routes registered ✅")
}
