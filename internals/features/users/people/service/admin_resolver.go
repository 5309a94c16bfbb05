package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hoaportal_backend/internals/constants"
	database "hoaportal_backend/internals/databases"
	auditService "hoaportal_backend/internals/features/audit/service"
	personModel "hoaportal_backend/internals/features/users/people/model"
)

// ResolveHandle decides which database handle a request runs on.
//
// Admins (people.account_type == hoa_admin) get the privileged service
// handle; everyone else — including callers whose person lookup fails — gets
// the RLS-enforced handle they came in with. If the privileged handle cannot
// be constructed the caller is downgraded, not rejected: this branch never
// escalates on error, and the downgrade leaves an audit entry.
//
// serviceHandle is database.ServiceHandle in production; tests inject their own.
func ResolveHandle(db *gorm.DB, serviceHandle func() (*database.Handle, error), authUserID uuid.UUID) *database.Handle {
	fallback := &database.Handle{DB: db, Privileged: false}

	if authUserID == uuid.Nil {
		return fallback
	}

	var person personModel.PersonModel
	if err := db.Select("person_id", "first_name", "last_name", "email", "account_type").
		Where("auth_user_id = ?", authUserID).
		First(&person).Error; err != nil {
		// no profile or lookup failure: treat as a regular user
		return fallback
	}

	if person.AccountType == nil || *person.AccountType != constants.AccountTypeHOAAdmin {
		return fallback
	}

	h, err := serviceHandle()
	if err != nil {
		log.Printf("[WARNING] service handle unavailable for admin %s: %v", person.PersonID, err)
		auditService.Record(db, person.FullName(), auditService.ActionPrivilegeDowngrade,
			"person", person.PersonID.String(), err.Error())
		return fallback
	}
	return h
}

// FindByAuthUserID returns the person owning an auth identity.
func FindByAuthUserID(db *gorm.DB, authUserID uuid.UUID) (*personModel.PersonModel, error) {
	var person personModel.PersonModel
	if err := db.Where("auth_user_id = ?", authUserID).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}
