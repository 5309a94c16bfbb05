package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "hoaportal_backend/internals/databases"
	"hoaportal_backend/internals/features/surveys/definition/dto"
	"hoaportal_backend/internals/features/surveys/definition/model"
	personService "hoaportal_backend/internals/features/users/people/service"
	helper "hoaportal_backend/internals/helpers"
	"hoaportal_backend/internals/revalidate"
)

var validate = validator.New()

// SurveyController serves the survey builder's definition CRUD. The survey
// tables are admin-owned, so handlers prefer the service handle and fall back
// to the RLS-scoped one when it is unavailable.
type SurveyController struct {
	DB            *gorm.DB
	ServiceHandle func() (*database.Handle, error)
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db, ServiceHandle: database.ServiceHandle}
}

func (sc *SurveyController) dataHandle() *database.Handle {
	if h, err := sc.ServiceHandle(); err == nil {
		return h
	}
	return &database.Handle{DB: sc.DB, Privileged: false}
}

// GET /api/surveys — newest first, summary columns only
func (sc *SurveyController) GetSurveys(c *fiber.Ctx) error {
	var surveys []model.SurveyDefinitionModel
	if err := sc.dataHandle().DB.
		Select("survey_definition_id", "survey_name", "survey_type", "description",
			"is_active", "is_template", "template_category",
			"active_period_start", "active_period_end", "created_at", "updated_at").
		Order("created_at DESC").
		Find(&surveys).Error; err != nil {
		log.Println("[ERROR] survey list:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	rows := make([]dto.SurveySummaryDTO, 0, len(surveys))
	for _, s := range surveys {
		rows = append(rows, dto.ToSurveySummaryDTO(s))
	}

	return helper.Success(c, "Surveys fetched", fiber.Map{
		"surveys": rows,
		"total":   len(rows),
	})
}

// POST /api/surveys/create
func (sc *SurveyController) CreateSurvey(c *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	survey := req.ToModel()
	survey.CreatedBy = sc.creatorID(c)

	if err := sc.dataHandle().DB.Create(&survey).Error; err != nil {
		log.Println("[ERROR] survey create:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	revalidate.SurveyCache(survey.SurveyDefinitionID.String())

	log.Printf("[SUCCESS] Survey %s created", survey.SurveyDefinitionID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Survey created", fiber.Map{
		"survey": survey,
	})
}

// GET /api/surveys/:id
func (sc *SurveyController) GetSurvey(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Survey not found")
	}

	var survey model.SurveyDefinitionModel
	if err := sc.dataHandle().DB.
		First(&survey, "survey_definition_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Survey not found")
		}
		log.Println("[ERROR] survey fetch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Survey fetched", fiber.Map{
		"survey": survey,
	})
}

// PUT /api/surveys/:id — partial update, stamps updated_at
func (sc *SurveyController) UpdateSurvey(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Survey not found")
	}

	var req dto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	updates := req.ToUpdates()
	updates["updated_at"] = time.Now().UTC()

	h := sc.dataHandle()
	res := h.DB.Model(&model.SurveyDefinitionModel{}).
		Where("survey_definition_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		log.Println("[ERROR] survey update:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Survey not found")
	}

	var survey model.SurveyDefinitionModel
	if err := h.DB.First(&survey, "survey_definition_id = ?", id).Error; err != nil {
		log.Println("[ERROR] survey reload:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	revalidate.SurveyCache(id.String())

	return helper.Success(c, "Survey updated", fiber.Map{
		"survey": survey,
	})
}

// creatorID threads the authenticated person into created_by when the request
// carries an identity; builder calls without one leave the column NULL.
func (sc *SurveyController) creatorID(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals("auth_user_id").(string)
	if raw == "" {
		return nil
	}
	authUserID, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	person, err := personService.FindByAuthUserID(sc.DB, authUserID)
	if err != nil {
		return nil
	}
	return &person.PersonID
}
