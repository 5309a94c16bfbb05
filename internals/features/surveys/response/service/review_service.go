package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	auditService "hoaportal_backend/internals/features/audit/service"
	"hoaportal_backend/internals/features/surveys/response/model"
	"hoaportal_backend/internals/revalidate"
)

// ReviewResult is the structured outcome of a review transition. Callers get
// this shape for every path — the workflow never raises.
type ReviewResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UpdateReviewStatus moves a response to newStatus and records who and when.
//
// The status set is open: any string the caller sends is written as-is (the
// dashboard only renders "reviewed" and "flagged" specially, but nothing here
// enforces a whitelist). reviewedBy is the acting identity's display name,
// threaded in from the request context.
func UpdateReviewStatus(db *gorm.DB, responseID, newStatus, reviewedBy string) (result ReviewResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] review update panic for %s: %v", responseID, r)
			result = ReviewResult{Success: false, Error: fmt.Sprintf("unexpected error: %v", r)}
		}
	}()

	if reviewedBy == "" {
		reviewedBy = "Admin"
	}
	now := time.Now().UTC()

	res := db.Model(&model.ResponseModel{}).
		Where("response_id = ?", responseID).
		Updates(map[string]interface{}{
			"review_status": newStatus,
			"reviewed_by":   reviewedBy,
			"reviewed_at":   now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] review update for %s: %v", responseID, res.Error)
		return ReviewResult{Success: false, Error: res.Error.Error()}
	}
	if res.RowsAffected == 0 {
		return ReviewResult{Success: false, Error: "Response not found"}
	}

	auditService.Record(db, reviewedBy, auditService.ActionReviewStatusChanged,
		"response", responseID, "status -> "+newStatus)

	revalidate.ResponseViews(responseID)

	log.Printf("[SUCCESS] Response %s marked %q by %s", responseID, newStatus, reviewedBy)
	return ReviewResult{Success: true, Status: newStatus}
}
