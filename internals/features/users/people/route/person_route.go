package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoaportal_backend/internals/features/users/people/controller"
)

// ProfileRoutes mounts the self-service profile endpoints behind the given
// JWT guard. The guard applies per route, never as a prefix over /api.
func ProfileRoutes(api fiber.Router, db *gorm.DB, jwtGuard fiber.Handler) {
	pc := controller.NewProfileController(db)

	api.Post("/auth/setup-profile", jwtGuard, pc.SetupProfile)
	api.Get("/profile", jwtGuard, pc.GetProfile)
	api.Put("/profile", jwtGuard, pc.UpdateProfile)
}

// PeopleAdminRoutes mounts the admin people table endpoints.
func PeopleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ac := controller.NewPeopleAdminController(db)

	admin.Get("/people", ac.GetPeople)
}
