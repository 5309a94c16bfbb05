package model

import (
	"time"
)

// ResponseModel is the responses table. IDs are legacy text identifiers
// ("001", "002", ...) that correlate with the scanned paper/PDF records —
// see scripts/check_response_ids for the known format mismatch.
type ResponseModel struct {
	ResponseID string `gorm:"column:response_id;primaryKey" json:"response_id"`

	Name         *string `gorm:"column:name" json:"name,omitempty"`
	Address      *string `gorm:"column:address" json:"address,omitempty"`
	EmailContact *string `gorm:"column:email_contact" json:"email_contact,omitempty"`
	Anonymous    *string `gorm:"column:anonymous" json:"anonymous,omitempty"`
	PropertyID   *string `gorm:"column:property_id" json:"property_id,omitempty"`

	ReviewStatus *string    `gorm:"column:review_status" json:"review_status,omitempty"`
	ReviewedBy   *string    `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNotes  *string    `gorm:"column:review_notes" json:"review_notes,omitempty"`

	PDFFilePath   *string    `gorm:"column:pdf_file_path" json:"pdf_file_path,omitempty"`
	PDFStorageURL *string    `gorm:"column:pdf_storage_url" json:"pdf_storage_url,omitempty"`
	PDFUploadedAt *time.Time `gorm:"column:pdf_uploaded_at" json:"pdf_uploaded_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ResponseModel) TableName() string {
	return "responses"
}
