// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hoaportal_backend/internals/configs"
	authModel "hoaportal_backend/internals/features/users/auth/model"
	authRepo "hoaportal_backend/internals/features/users/auth/repository"
	helper "hoaportal_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", errors.New("JWT_REFRESH_SECRET not set")
	}
	return secret, nil
}

func issueAccessToken(user *authModel.UserModel, secret string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func issueRefreshToken(db *gorm.DB, user *authModel.UserModel, refreshSecret, userAgent string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(token, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
	}
	if ua := strings.TrimSpace(userAgent); ua != "" {
		row.UserAgent = &ua
	}
	if err := authRepo.StoreRefreshToken(db, &row); err != nil {
		return "", err
	}
	return token, nil
}

// computeRefreshHash keeps token plaintext out of the database.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// ========================== REFRESH ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshRaw := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshRaw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refreshRaw = strings.TrimSpace(body.RefreshToken)
	}
	if refreshRaw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshRaw, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// the hash must still be live in the DB (rotation revokes old ones)
	hash := computeRefreshHash(refreshRaw, refreshSecret)
	if _, err := authRepo.FindActiveRefreshToken(db, hash); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	// ROTATE: revoke the presented token before issuing a new pair
	if err := authRepo.RevokeRefreshToken(db, hash); err != nil {
		log.Printf("[WARNING] refresh rotation revoke failed: %v", err)
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	accessToken, err := issueAccessToken(user, jwtSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	newRefresh, err := issueRefreshToken(db, user, refreshSecret, c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	setAuthCookies(c, accessToken, newRefresh)
	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": newRefresh,
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if refreshRaw := strings.TrimSpace(c.Cookies("refresh_token")); refreshRaw != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			if err := authRepo.RevokeRefreshToken(db, computeRefreshHash(refreshRaw, refreshSecret)); err != nil {
				log.Printf("[WARNING] logout revoke failed: %v", err)
			}
		}
	}

	clearAuthCookies(c)
	return helper.Success(c, "Logged out", nil)
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true})
}
