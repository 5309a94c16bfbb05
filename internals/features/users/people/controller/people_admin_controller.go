package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	database "hoaportal_backend/internals/databases"
	"hoaportal_backend/internals/features/users/people/dto"
	"hoaportal_backend/internals/features/users/people/model"
	"hoaportal_backend/internals/features/users/people/service"
	helper "hoaportal_backend/internals/helpers"
	authmw "hoaportal_backend/internals/middlewares/auth"
)

// PeopleAdminController backs the admin people table. Every handler resolves
// its own data handle: admins run on the service role, everyone else stays on
// the RLS-scoped connection and sees only what the policies allow.
type PeopleAdminController struct {
	DB            *gorm.DB
	ServiceHandle func() (*database.Handle, error)
}

func NewPeopleAdminController(db *gorm.DB) *PeopleAdminController {
	return &PeopleAdminController{DB: db, ServiceHandle: database.ServiceHandle}
}

// GET /api/a/people?search=&account_type=&page=&per_page=
func (ac *PeopleAdminController) GetPeople(c *fiber.Ctx) error {
	authUserID, err := authmw.AuthUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	h := service.ResolveHandle(ac.DB, ac.ServiceHandle, authUserID)

	paging := helper.ResolvePaging(c, 50, 500)

	q := h.DB.Model(&model.PersonModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if types := splitCSV(c.Query("account_type")); len(types) > 0 {
		q = q.Where("account_type = ANY(?)", pq.Array(types))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] people count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch people")
	}

	var people []model.PersonModel
	if err := q.Order("last_name, first_name").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&people).Error; err != nil {
		log.Println("[ERROR] people list:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch people")
	}

	rows := make([]dto.PersonSummaryDTO, 0, len(people))
	for _, p := range people {
		rows = append(rows, dto.ToPersonSummaryDTO(p))
	}

	return helper.Success(c, "People fetched", fiber.Map{
		"people":     rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
		"privileged": h.Privileged,
	})
}

func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
