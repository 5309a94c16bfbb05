package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hoaportal_backend/internals/features/properties/dto"
	"hoaportal_backend/internals/features/properties/model"
	helper "hoaportal_backend/internals/helpers"
)

// PropertyController is read-only: the import/geocoding pipeline owns writes.
type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

// GET /api/properties — panel columns, ordered by address
func (pc *PropertyController) GetProperties(c *fiber.Ctx) error {
	var properties []model.PropertyModel
	if err := pc.DB.
		Select("property_id", "address", "lot_number", "hoa_zone", "street_group").
		Order("address").
		Find(&properties).Error; err != nil {
		log.Println("[ERROR] property list:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch properties")
	}

	rows := make([]dto.PropertySummaryDTO, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, dto.ToPropertySummaryDTO(p))
	}

	return helper.Success(c, "Properties fetched", fiber.Map{
		"properties": rows,
		"total":      len(rows),
	})
}

// GET /api/properties/search?q=
func (pc *PropertyController) SearchProperties(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query must not be empty")
	}

	var properties []model.PropertyModel
	if err := pc.DB.
		Select("property_id", "address", "lot_number", "hoa_zone", "street_group").
		Where("address ILIKE ? OR lot_number ILIKE ?", "%"+q+"%", "%"+q+"%").
		Order("address").
		Limit(50).
		Find(&properties).Error; err != nil {
		log.Println("[ERROR] property search:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to search properties")
	}

	rows := make([]dto.PropertySummaryDTO, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, dto.ToPropertySummaryDTO(p))
	}

	return helper.Success(c, "Search results", fiber.Map{
		"properties": rows,
		"total":      len(rows),
	})
}

// GET /api/properties/:id — full row
func (pc *PropertyController) GetProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Property not found")
	}

	var property model.PropertyModel
	if err := pc.DB.First(&property, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property not found")
		}
		log.Println("[ERROR] property fetch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch property")
	}

	return helper.Success(c, "Property fetched", fiber.Map{
		"property": property,
	})
}
