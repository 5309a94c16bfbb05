package dto

import (
	"strings"
	"time"

	responseModel "hoaportal_backend/internals/features/surveys/response/model"
)

/* ===========================
   Requests
   =========================== */

type UpdateReviewRequest struct {
	Status string `json:"status"`
}

func (r *UpdateReviewRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
}

// UpdatePDFRequest carries the storage metadata written after a PDF upload.
type UpdatePDFRequest struct {
	PDFFilePath   *string `json:"pdf_file_path,omitempty"`
	PDFStorageURL *string `json:"pdf_storage_url,omitempty"`
}

/* ===========================
   Responses
   =========================== */

// ResponseSummaryDTO is the review table row.
type ResponseSummaryDTO struct {
	ResponseID   string     `json:"response_id"`
	Name         *string    `json:"name,omitempty"`
	Address      *string    `json:"address,omitempty"`
	EmailContact *string    `json:"email_contact,omitempty"`
	Anonymous    *string    `json:"anonymous,omitempty"`
	ReviewStatus *string    `json:"review_status,omitempty"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	HasPDF       bool       `json:"has_pdf"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToResponseSummaryDTO(m responseModel.ResponseModel) ResponseSummaryDTO {
	return ResponseSummaryDTO{
		ResponseID:   m.ResponseID,
		Name:         m.Name,
		Address:      m.Address,
		EmailContact: m.EmailContact,
		Anonymous:    m.Anonymous,
		ReviewStatus: m.ReviewStatus,
		ReviewedBy:   m.ReviewedBy,
		ReviewedAt:   m.ReviewedAt,
		HasPDF:       m.PDFStorageURL != nil && *m.PDFStorageURL != "",
		CreatedAt:    m.CreatedAt,
	}
}
