package service

import (
	"log"

	"gorm.io/gorm"

	auditModel "hoaportal_backend/internals/features/audit/model"
)

// Audit actions recorded by this service.
const (
	ActionReviewStatusChanged = "review_status_changed"
	ActionPrivilegeDowngrade  = "privilege_downgrade"
	ActionPDFMetadataUpdated  = "pdf_metadata_updated"
)

// Record appends one audit entry. Auditing must never break the operation it
// describes, so failures are logged and swallowed.
func Record(db *gorm.DB, actor, action string, entityType, entityID, detail string) {
	entry := auditModel.AuditLogModel{
		Actor:  actor,
		Action: action,
	}
	if entityType != "" {
		entry.EntityType = &entityType
	}
	if entityID != "" {
		entry.EntityID = &entityID
	}
	if detail != "" {
		entry.Detail = &detail
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] audit: failed to record %s by %s: %v", action, actor, err)
	}
}
