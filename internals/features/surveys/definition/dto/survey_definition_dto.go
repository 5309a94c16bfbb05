package dto

import (
	"time"

	"gorm.io/datatypes"

	surveyModel "hoaportal_backend/internals/features/surveys/definition/model"
)

/* ===========================
   Requests
   =========================== */

type CreateSurveyRequest struct {
	SurveyName        string         `json:"survey_name" validate:"required"`
	SurveyType        string         `json:"survey_type" validate:"required"`
	Description       *string        `json:"description,omitempty"`
	ResponseSchema    datatypes.JSON `json:"response_schema,omitempty"`
	DisplayConfig     datatypes.JSON `json:"display_config,omitempty"`
	TargetingConfig   datatypes.JSON `json:"targeting_config,omitempty"`
	IsActive          *bool          `json:"is_active,omitempty"`
	IsTemplate        *bool          `json:"is_template,omitempty"`
	TemplateCategory  *string        `json:"template_category,omitempty"`
	AutoRecurring     *bool          `json:"auto_recurring,omitempty"`
	RecurrenceConfig  datatypes.JSON `json:"recurrence_config,omitempty"`
	ActivePeriodStart *time.Time     `json:"active_period_start,omitempty"`
	ActivePeriodEnd   *time.Time     `json:"active_period_end,omitempty"`
}

func (r *CreateSurveyRequest) ToModel() surveyModel.SurveyDefinitionModel {
	schema := r.ResponseSchema
	if len(schema) == 0 {
		schema = datatypes.JSON([]byte(`{}`))
	}
	return surveyModel.SurveyDefinitionModel{
		SurveyName:        r.SurveyName,
		SurveyType:        r.SurveyType,
		Description:       r.Description,
		ResponseSchema:    schema,
		DisplayConfig:     r.DisplayConfig,
		TargetingConfig:   r.TargetingConfig,
		IsActive:          r.IsActive,
		IsTemplate:        r.IsTemplate,
		TemplateCategory:  r.TemplateCategory,
		AutoRecurring:     r.AutoRecurring,
		RecurrenceConfig:  r.RecurrenceConfig,
		ActivePeriodStart: r.ActivePeriodStart,
		ActivePeriodEnd:   r.ActivePeriodEnd,
	}
}

// UpdateSurveyRequest is a partial payload: only non-nil fields are written.
type UpdateSurveyRequest struct {
	SurveyName        *string        `json:"survey_name,omitempty"`
	SurveyType        *string        `json:"survey_type,omitempty"`
	Description       *string        `json:"description,omitempty"`
	ResponseSchema    datatypes.JSON `json:"response_schema,omitempty"`
	DisplayConfig     datatypes.JSON `json:"display_config,omitempty"`
	TargetingConfig   datatypes.JSON `json:"targeting_config,omitempty"`
	IsActive          *bool          `json:"is_active,omitempty"`
	IsTemplate        *bool          `json:"is_template,omitempty"`
	TemplateCategory  *string        `json:"template_category,omitempty"`
	AutoRecurring     *bool          `json:"auto_recurring,omitempty"`
	RecurrenceConfig  datatypes.JSON `json:"recurrence_config,omitempty"`
	ActivePeriodStart *time.Time     `json:"active_period_start,omitempty"`
	ActivePeriodEnd   *time.Time     `json:"active_period_end,omitempty"`
}

// ToUpdates builds the column map for a partial UPDATE; updated_at is stamped
// by the controller.
func (r *UpdateSurveyRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.SurveyName != nil {
		updates["survey_name"] = *r.SurveyName
	}
	if r.SurveyType != nil {
		updates["survey_type"] = *r.SurveyType
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if len(r.ResponseSchema) > 0 {
		updates["response_schema"] = r.ResponseSchema
	}
	if len(r.DisplayConfig) > 0 {
		updates["display_config"] = r.DisplayConfig
	}
	if len(r.TargetingConfig) > 0 {
		updates["targeting_config"] = r.TargetingConfig
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	if r.IsTemplate != nil {
		updates["is_template"] = *r.IsTemplate
	}
	if r.TemplateCategory != nil {
		updates["template_category"] = *r.TemplateCategory
	}
	if r.AutoRecurring != nil {
		updates["auto_recurring"] = *r.AutoRecurring
	}
	if len(r.RecurrenceConfig) > 0 {
		updates["recurrence_config"] = r.RecurrenceConfig
	}
	if r.ActivePeriodStart != nil {
		updates["active_period_start"] = *r.ActivePeriodStart
	}
	if r.ActivePeriodEnd != nil {
		updates["active_period_end"] = *r.ActivePeriodEnd
	}
	return updates
}

/* ===========================
   Responses
   =========================== */

// SurveySummaryDTO is the list row: the big config blobs stay out of the
// survey list payload.
type SurveySummaryDTO struct {
	SurveyDefinitionID string     `json:"survey_definition_id"`
	SurveyName         string     `json:"survey_name"`
	SurveyType         string     `json:"survey_type"`
	Description        *string    `json:"description,omitempty"`
	IsActive           *bool      `json:"is_active,omitempty"`
	IsTemplate         *bool      `json:"is_template,omitempty"`
	TemplateCategory   *string    `json:"template_category,omitempty"`
	ActivePeriodStart  *time.Time `json:"active_period_start,omitempty"`
	ActivePeriodEnd    *time.Time `json:"active_period_end,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToSurveySummaryDTO(m surveyModel.SurveyDefinitionModel) SurveySummaryDTO {
	return SurveySummaryDTO{
		SurveyDefinitionID: m.SurveyDefinitionID.String(),
		SurveyName:         m.SurveyName,
		SurveyType:         m.SurveyType,
		Description:        m.Description,
		IsActive:           m.IsActive,
		IsTemplate:         m.IsTemplate,
		TemplateCategory:   m.TemplateCategory,
		ActivePeriodStart:  m.ActivePeriodStart,
		ActivePeriodEnd:    m.ActivePeriodEnd,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
