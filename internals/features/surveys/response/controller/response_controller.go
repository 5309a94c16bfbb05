package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "hoaportal_backend/internals/databases"
	auditService "hoaportal_backend/internals/features/audit/service"
	"hoaportal_backend/internals/features/surveys/response/dto"
	"hoaportal_backend/internals/features/surveys/response/model"
	"hoaportal_backend/internals/features/surveys/response/service"
	personService "hoaportal_backend/internals/features/users/people/service"
	helper "hoaportal_backend/internals/helpers"
	authmw "hoaportal_backend/internals/middlewares/auth"
	"hoaportal_backend/internals/revalidate"
)

// ResponseController backs the admin review dashboard. Responses are written
// by the survey-submission pipeline; this service only reads them and runs the
// review workflow.
type ResponseController struct {
	DB            *gorm.DB
	ServiceHandle func() (*database.Handle, error)
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{DB: db, ServiceHandle: database.ServiceHandle}
}

func (rc *ResponseController) resolve(c *fiber.Ctx) *database.Handle {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return &database.Handle{DB: rc.DB, Privileged: false}
	}
	return personService.ResolveHandle(rc.DB, rc.ServiceHandle, authUserID)
}

// GET /api/a/responses?review_status=&page=&per_page=
func (rc *ResponseController) GetResponses(c *fiber.Ctx) error {
	h := rc.resolve(c)
	paging := helper.ResolvePaging(c, 50, 500)

	q := h.DB.Model(&model.ResponseModel{})
	if status := strings.TrimSpace(c.Query("review_status")); status != "" {
		q = q.Where("review_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] response count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var responses []model.ResponseModel
	if err := q.Order("response_id").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&responses).Error; err != nil {
		log.Println("[ERROR] response list:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	rows := make([]dto.ResponseSummaryDTO, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, dto.ToResponseSummaryDTO(r))
	}

	return helper.Success(c, "Responses fetched", fiber.Map{
		"responses":  rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

// GET /api/a/responses/:id
func (rc *ResponseController) GetResponse(c *fiber.Ctx) error {
	h := rc.resolve(c)

	var response model.ResponseModel
	if err := h.DB.First(&response, "response_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Response not found")
		}
		log.Println("[ERROR] response fetch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Response fetched", fiber.Map{
		"response": response,
	})
}

// PUT /api/a/responses/:id/review
// HTTP binding of the review workflow; the service returns the structured
// result shape and never raises.
func (rc *ResponseController) UpdateReview(c *fiber.Ctx) error {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if req.Status == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Status is required")
	}

	reviewedBy := "Admin"
	if person, err := personService.FindByAuthUserID(rc.DB, authUserID); err == nil {
		reviewedBy = person.FullName()
	} else if email, ok := c.Locals("user_email").(string); ok && email != "" {
		reviewedBy = email
	}

	h := personService.ResolveHandle(rc.DB, rc.ServiceHandle, authUserID)
	result := service.UpdateReviewStatus(h.DB, c.Params("id"), req.Status, reviewedBy)
	if !result.Success {
		if result.Error == "Response not found" {
			return helper.Error(c, fiber.StatusNotFound, result.Error)
		}
		return helper.Error(c, fiber.StatusInternalServerError, result.Error)
	}

	return helper.Success(c, "Review status updated", result)
}

// PUT /api/a/responses/:id/pdf
// Updates the stored-PDF metadata after an upload and refreshes the views.
func (rc *ResponseController) UpdatePDF(c *fiber.Ctx) error {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var req dto.UpdatePDFRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"pdf_uploaded_at": now,
		"updated_at":      now,
	}
	if req.PDFFilePath != nil {
		updates["pdf_file_path"] = *req.PDFFilePath
	}
	if req.PDFStorageURL != nil {
		updates["pdf_storage_url"] = *req.PDFStorageURL
	}

	h := personService.ResolveHandle(rc.DB, rc.ServiceHandle, authUserID)
	responseID := c.Params("id")

	res := h.DB.Model(&model.ResponseModel{}).
		Where("response_id = ?", responseID).
		Updates(updates)
	if res.Error != nil {
		log.Println("[ERROR] pdf metadata update:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Response not found")
	}

	actor := "Admin"
	if person, err := personService.FindByAuthUserID(rc.DB, authUserID); err == nil {
		actor = person.FullName()
	}
	auditService.Record(rc.DB, actor, auditService.ActionPDFMetadataUpdated,
		"response", responseID, "")

	revalidate.ResponseViews(responseID)

	return helper.Success(c, "PDF metadata updated", fiber.Map{
		"response_id":     responseID,
		"pdf_uploaded_at": now,
	})
}
