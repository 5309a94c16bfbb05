package dto

import (
	propertyModel "hoaportal_backend/internals/features/properties/model"
)

// PropertySummaryDTO is the property panel row: the columns the original
// panel selects, nothing more.
type PropertySummaryDTO struct {
	PropertyID  string  `json:"property_id"`
	Address     string  `json:"address"`
	LotNumber   *string `json:"lot_number,omitempty"`
	HOAZone     string  `json:"hoa_zone"`
	StreetGroup *string `json:"street_group,omitempty"`
}

func ToPropertySummaryDTO(m propertyModel.PropertyModel) PropertySummaryDTO {
	return PropertySummaryDTO{
		PropertyID:  m.PropertyID.String(),
		Address:     m.Address,
		LotNumber:   m.LotNumber,
		HOAZone:     m.HOAZone,
		StreetGroup: m.StreetGroup,
	}
}
