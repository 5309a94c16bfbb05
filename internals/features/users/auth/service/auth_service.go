package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoaportal_backend/internals/configs"
	authHelper "hoaportal_backend/internals/features/users/auth/helper"
	authModel "hoaportal_backend/internals/features/users/auth/model"
	authRepo "hoaportal_backend/internals/features/users/auth/repository"
	personModel "hoaportal_backend/internals/features/users/people/model"
	helper "hoaportal_backend/internals/helpers"
)

// ========================== REGISTER ==========================
// POST /api/auth/register
// Creates the auth identity only; the person record comes later through
// setup-profile, same as the original portal's sign-up flow.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := authHelper.ValidateRegister(input.Email, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if _, err := authRepo.FindUserByEmail(db, input.Email); err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		log.Println("[ERROR] register create:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}

	log.Printf("[SUCCESS] User %s registered", user.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", fiber.Map{
		"user": user,
	})
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := authRepo.FindUserByEmailLight(db, input.Email)
	if err != nil {
		// same message for unknown email and wrong password
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	return issueSession(db, c, user)
}

// ========================== GOOGLE LOGIN ==========================
// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing id_token")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[ERROR] google token verify:", err)
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	googleID := claimSet.Sub
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if errors.Is(err, gorm.ErrRecordNotFound) && email != "" {
		// link by email when the account predates Google sign-in
		if byEmail, err2 := authRepo.FindUserByEmail(db, email); err2 == nil {
			byEmail.GoogleID = &googleID
			if err3 := db.Model(byEmail).Update("google_id", googleID).Error; err3 != nil {
				log.Println("[WARNING] google link failed:", err3)
			}
			user, err = byEmail, nil
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		newUser := authModel.UserModel{
			Email:    email,
			Password: "-", // no local password for Google-only accounts
			GoogleID: &googleID,
			IsActive: true,
		}
		if err2 := authRepo.CreateUser(db, &newUser); err2 != nil {
			log.Println("[ERROR] google register:", err2)
			return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
		}
		user = &newUser
	} else if err != nil {
		log.Println("[ERROR] google lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	return issueSession(db, c, user)
}

// issueSession issues the token pair, stamps people.last_login_at, and sets
// the auth cookies.
func issueSession(db *gorm.DB, c *fiber.Ctx, user *authModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	accessToken, err := issueAccessToken(user, jwtSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	refreshToken, err := issueRefreshToken(db, user, refreshSecret, c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	now := time.Now().UTC()
	if err := db.Model(&personModel.PersonModel{}).
		Where("auth_user_id = ?", user.ID).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[WARNING] last_login stamp failed: %v", err)
	}

	setAuthCookies(c, accessToken, refreshToken)

	log.Printf("[SUCCESS] User %s logged in", user.ID)
	return helper.Success(c, "Logged in", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}
