package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoaportal_backend/internals/features/surveys/definition/controller"
	authmw "hoaportal_backend/internals/middlewares/auth"
)

// SurveyRoutes mounts the survey-builder CRUD. The endpoints serve anonymous
// readers, so identity is optional: when a valid token is present the create
// handler attributes created_by to the caller.
func SurveyRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewSurveyController(db)

	surveys := api.Group("/surveys", authmw.OptionalAuthMiddleware(db))
	surveys.Get("/", sc.GetSurveys)
	surveys.Post("/create", sc.CreateSurvey)
	surveys.Get("/:id", sc.GetSurvey)
	surveys.Put("/:id", sc.UpdateSurvey)
}
