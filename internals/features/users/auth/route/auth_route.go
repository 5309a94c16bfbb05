package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "hoaportal_backend/internals/features/users/auth/controller"
	"hoaportal_backend/internals/middlewares"
	authmw "hoaportal_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the authenticated
// change-password endpoint under /auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)

	auth.Post("/change-password", authmw.AuthMiddleware(db), ctrl.ChangePassword)
}
