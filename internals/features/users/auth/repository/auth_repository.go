// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "hoaportal_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmailLight loads only what the login path needs.
func FindUserByEmailLight(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Select("id", "email", "password", "is_active").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

/* ====================== REFRESH TOKENS ====================== */

func StoreRefreshToken(db *gorm.DB, token *authModel.RefreshToken) error {
	return db.Create(token).Error
}

// FindActiveRefreshToken matches an unrevoked, unexpired token hash.
func FindActiveRefreshToken(db *gorm.DB, hash []byte) (*authModel.RefreshToken, error) {
	var token authModel.RefreshToken
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, time.Now().UTC()).
		First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func RevokeRefreshToken(db *gorm.DB, hash []byte) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked_at", now).Error
}

func DeleteExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := db.Where("expires_at < ?", time.Now().UTC()).
		Delete(&authModel.RefreshToken{})
	return res.RowsAffected, res.Error
}
