// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"hoaportal_backend/internals/configs"
	authModel "hoaportal_backend/internals/features/users/auth/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header (or cookie fallback)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Parse & verify JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Expiry check with small clock leeway
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) user_id from sub, then make sure the account is still active
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("auth_user_id", userID.String())

		var u authModel.UserModel
		if err := db.Select("id", "email", "is_active").First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] user lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !u.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Account has been deactivated")
		}
		c.Locals("user_email", u.Email)

		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller's identity when the request
// carries a valid token and lets it through untouched otherwise. Used on
// endpoints that serve anonymous readers but attribute writes when they can.
// It never rejects.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return c.Next()
		}
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Next()
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}

		var u authModel.UserModel
		if err := db.Select("id", "email", "is_active").First(&u, "id = ?", userID).Error; err != nil || !u.IsActive {
			return c.Next()
		}

		c.Locals("auth_user_id", userID.String())
		c.Locals("user_email", u.Email)
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
