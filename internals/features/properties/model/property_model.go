package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyModel is the properties table behind the dashboard's property panel.
// This service only reads it; the import/geocoding pipeline writes it.
type PropertyModel struct {
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;primaryKey" json:"property_id"`

	Address     string  `gorm:"column:address;not null" json:"address"`
	LotNumber   *string `gorm:"column:lot_number" json:"lot_number,omitempty"`
	HOAZone     string  `gorm:"column:hoa_zone;not null" json:"hoa_zone"`
	StreetGroup *string `gorm:"column:street_group" json:"street_group,omitempty"`

	PropertyType       *string `gorm:"column:property_type" json:"property_type,omitempty"`
	ArchitecturalStyle *string `gorm:"column:architectural_style" json:"architectural_style,omitempty"`
	YearBuilt          *int    `gorm:"column:year_built" json:"year_built,omitempty"`
	SquareFootage      *int    `gorm:"column:square_footage" json:"square_footage,omitempty"`
	LotSizeSqft        *int    `gorm:"column:lot_size_sqft" json:"lot_size_sqft,omitempty"`

	SpecialFeatures datatypes.JSON `gorm:"column:special_features;type:jsonb" json:"special_features,omitempty"`
	Notes           *string        `gorm:"column:notes" json:"notes,omitempty"`

	Latitude          *float64   `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude         *float64   `gorm:"column:longitude" json:"longitude,omitempty"`
	GeocodedAt        *time.Time `gorm:"column:geocoded_at" json:"geocoded_at,omitempty"`
	GeocodingAccuracy *string    `gorm:"column:geocoding_accuracy" json:"geocoding_accuracy,omitempty"`

	ExternalPropertyID *string `gorm:"column:external_property_id" json:"external_property_id,omitempty"`
	Source             *string `gorm:"column:source" json:"source,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

func (p *PropertyModel) BeforeCreate(tx *gorm.DB) error {
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	return nil
}
