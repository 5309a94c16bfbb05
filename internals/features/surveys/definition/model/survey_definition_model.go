package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SurveyDefinitionModel is the survey_definitions table: a named, versioned
// survey template. The config blobs are opaque to this service — the survey
// builder frontend owns their shape.
type SurveyDefinitionModel struct {
	SurveyDefinitionID uuid.UUID `gorm:"column:survey_definition_id;type:uuid;primaryKey" json:"survey_definition_id"`

	SurveyName  string  `gorm:"column:survey_name;not null" json:"survey_name" validate:"required"`
	SurveyType  string  `gorm:"column:survey_type;not null" json:"survey_type" validate:"required"`
	Description *string `gorm:"column:description" json:"description,omitempty"`

	ResponseSchema  datatypes.JSON `gorm:"column:response_schema;type:jsonb;not null" json:"response_schema"`
	DisplayConfig   datatypes.JSON `gorm:"column:display_config;type:jsonb" json:"display_config,omitempty"`
	TargetingConfig datatypes.JSON `gorm:"column:targeting_config;type:jsonb" json:"targeting_config,omitempty"`

	IsActive         *bool   `gorm:"column:is_active;default:false" json:"is_active,omitempty"`
	IsTemplate       *bool   `gorm:"column:is_template;default:false" json:"is_template,omitempty"`
	TemplateCategory *string `gorm:"column:template_category" json:"template_category,omitempty"`
	TargetAudience   *string `gorm:"column:target_audience" json:"target_audience,omitempty"`

	AutoRecurring    *bool          `gorm:"column:auto_recurring;default:false" json:"auto_recurring,omitempty"`
	RecurrenceConfig datatypes.JSON `gorm:"column:recurrence_config;type:jsonb" json:"recurrence_config,omitempty"`

	ActivePeriodStart *time.Time `gorm:"column:active_period_start" json:"active_period_start,omitempty"`
	ActivePeriodEnd   *time.Time `gorm:"column:active_period_end" json:"active_period_end,omitempty"`

	Version        *int       `gorm:"column:version;default:1" json:"version,omitempty"`
	ParentSurveyID *uuid.UUID `gorm:"column:parent_survey_id;type:uuid" json:"parent_survey_id,omitempty"`
	CreatedBy      *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyDefinitionModel) TableName() string {
	return "survey_definitions"
}

func (s *SurveyDefinitionModel) BeforeCreate(tx *gorm.DB) error {
	if s.SurveyDefinitionID == uuid.Nil {
		s.SurveyDefinitionID = uuid.New()
	}
	return nil
}
