package testutil

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	auditModel "hoaportal_backend/internals/features/audit/model"
	propertyModel "hoaportal_backend/internals/features/properties/model"
	surveyModel "hoaportal_backend/internals/features/surveys/definition/model"
	responseModel "hoaportal_backend/internals/features/surveys/response/model"
	authModel "hoaportal_backend/internals/features/users/auth/model"
	personModel "hoaportal_backend/internals/features/users/people/model"
)

// OpenTestDB opens an in-memory sqlite database migrated with every model.
// Each call gets its own database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.RefreshToken{},
		&personModel.PersonModel{},
		&surveyModel.SurveyDefinitionModel{},
		&responseModel.ResponseModel{},
		&propertyModel.PropertyModel{},
		&auditModel.AuditLogModel{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// NewTestApp returns a fiber app configured like production minus the
// global middlewares.
func NewTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return fiber.New()
}

// FakeAuth returns a middleware that injects the locals the real auth
// middleware would set, so handlers can be exercised without JWTs.
func FakeAuth(userID, email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("auth_user_id", userID)
		}
		if email != "" {
			c.Locals("user_email", email)
		}
		return c.Next()
	}
}
