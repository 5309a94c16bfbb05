package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "hoaportal_backend/internals/features/users/auth/helper"
	authRepo "hoaportal_backend/internals/features/users/auth/repository"
	helper "hoaportal_backend/internals/helpers"
)

// ChangePassword handles POST /api/auth/change-password for the signed-in user.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userIDRaw, ok := c.Locals("auth_user_id").(string)
	if !ok || userIDRaw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.OldPassword); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Old password is incorrect")
	}
	if len(input.NewPassword) < 8 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "New password must be at least 8 characters")
	}

	hashed, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, hashed); err != nil {
		log.Println("[ERROR] change password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	log.Printf("[SUCCESS] Password changed for user %s", userID)
	return helper.Success(c, "Password updated", nil)
}
