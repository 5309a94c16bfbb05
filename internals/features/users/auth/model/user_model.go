package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the auth identity row. Profile data lives in people
// (one person per auth identity); this table only carries credentials.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
