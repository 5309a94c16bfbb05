package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonModel is the people table: one profile per auth identity.
// Rows are never hard-deleted; account_status carries lifecycle instead.
type PersonModel struct {
	PersonID   uuid.UUID  `gorm:"column:person_id;type:uuid;primaryKey" json:"person_id"`
	AuthUserID *uuid.UUID `gorm:"column:auth_user_id;type:uuid;uniqueIndex" json:"auth_user_id,omitempty"`

	Email     *string `gorm:"column:email;size:255" json:"email,omitempty"`
	FirstName string  `gorm:"column:first_name;not null" json:"first_name" validate:"required"`
	LastName  string  `gorm:"column:last_name;not null" json:"last_name" validate:"required"`
	Phone     *string `gorm:"column:phone;size:50" json:"phone,omitempty"`

	AccountType            *string `gorm:"column:account_type;type:varchar(20)" json:"account_type,omitempty"`
	AccountStatus          *string `gorm:"column:account_status;type:varchar(20)" json:"account_status,omitempty"`
	VerificationMethod     *string `gorm:"column:verification_method;type:varchar(30)" json:"verification_method,omitempty"`
	PreferredContactMethod *string `gorm:"column:preferred_contact_method;type:varchar(20)" json:"preferred_contact_method,omitempty"`

	IsOfficialOwner *bool   `gorm:"column:is_official_owner" json:"is_official_owner,omitempty"`
	MailingAddress  *string `gorm:"column:mailing_address" json:"mailing_address,omitempty"`
	MailingCity     *string `gorm:"column:mailing_city" json:"mailing_city,omitempty"`
	MailingState    *string `gorm:"column:mailing_state;size:2" json:"mailing_state,omitempty"`
	MailingZip      *string `gorm:"column:mailing_zip;size:10" json:"mailing_zip,omitempty"`

	EmailVerifiedAt *time.Time `gorm:"column:email_verified_at" json:"email_verified_at,omitempty"`
	LastLoginAt     *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PersonModel) TableName() string {
	return "people"
}

func (p *PersonModel) BeforeCreate(tx *gorm.DB) error {
	if p.PersonID == uuid.Nil {
		p.PersonID = uuid.New()
	}
	return nil
}

// FullName is the display identity stamped into audit fields.
func (p *PersonModel) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.Email != nil:
		return *p.Email
	default:
		return "Admin"
	}
}
