package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoaportal_backend/internals/constants"
	"hoaportal_backend/internals/features/users/people/dto"
	"hoaportal_backend/internals/features/users/people/model"
	helper "hoaportal_backend/internals/helpers"
	authmw "hoaportal_backend/internals/middlewares/auth"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// POST /api/auth/setup-profile
// Creates the caller's person record on first sign-up. Rejects a second
// call for the same identity instead of upserting.
func (pc *ProfileController) SetupProfile(c *fiber.Ctx) error {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - no authenticated user")
	}

	var req dto.SetupProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if req.FirstName == "" || req.LastName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "First name and last name are required")
	}

	// Idempotency by rejection: one profile per auth identity.
	var existing model.PersonModel
	err = pc.DB.Select("person_id").Where("auth_user_id = ?", authUserID).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Profile already exists for this user")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] setup-profile lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create profile")
	}

	email, _ := c.Locals("user_email").(string)
	accountType := constants.AccountTypeResident
	accountStatus := constants.AccountStatusPending
	verification := constants.VerificationEmailSignup
	contactMethod := "email"

	person := model.PersonModel{
		AuthUserID:             &authUserID,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		AccountType:            &accountType,
		AccountStatus:          &accountStatus,
		VerificationMethod:     &verification,
		PreferredContactMethod: &contactMethod,
	}
	if email != "" {
		person.Email = &email
	}

	if err := pc.DB.Create(&person).Error; err != nil {
		log.Println("[ERROR] setup-profile create:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create profile")
	}

	log.Printf("[SUCCESS] Profile created for auth user %s", authUserID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Profile created", fiber.Map{
		"profile": person,
	})
}

// PUT /api/profile
// Self-service update scoped to the caller's own row.
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if req.FirstName == "" || req.LastName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "First name and last name are required")
	}

	updates := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"updated_at": time.Now().UTC(),
	}
	if req.PreferredContactMethod != nil {
		updates["preferred_contact_method"] = *req.PreferredContactMethod
	}

	res := pc.DB.Model(&model.PersonModel{}).
		Where("auth_user_id = ?", authUserID).
		Updates(updates)
	if res.Error != nil {
		log.Println("[ERROR] profile update:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Profile not found")
	}

	var person model.PersonModel
	if err := pc.DB.Where("auth_user_id = ?", authUserID).First(&person).Error; err != nil {
		log.Println("[ERROR] profile reload:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.Success(c, "Profile updated", fiber.Map{
		"profile": person,
	})
}

// GET /api/profile
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var person model.PersonModel
	if err := pc.DB.Where("auth_user_id = ?", authUserID).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Profile not found")
		}
		log.Println("[ERROR] profile fetch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.Success(c, "Profile fetched", fiber.Map{
		"profile": person,
	})
}
