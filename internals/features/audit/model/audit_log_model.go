package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogModel is an append-only trail of privileged actions: review
// transitions and fail-open authorization downgrades.
type AuditLogModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	Actor      string  `gorm:"column:actor;not null" json:"actor"`
	Action     string  `gorm:"column:action;not null" json:"action"`
	EntityType *string `gorm:"column:entity_type" json:"entity_type,omitempty"`
	EntityID   *string `gorm:"column:entity_id" json:"entity_id,omitempty"`
	Detail     *string `gorm:"column:detail" json:"detail,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_log"
}

func (a *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
