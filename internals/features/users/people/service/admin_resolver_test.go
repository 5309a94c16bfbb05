package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"hoaportal_backend/internals/constants"
	database "hoaportal_backend/internals/databases"
	auditModel "hoaportal_backend/internals/features/audit/model"
	personModel "hoaportal_backend/internals/features/users/people/model"
	"hoaportal_backend/internals/features/users/people/service"
	"hoaportal_backend/internals/testutil"
)

func TestResolveHandle_AnonymousGetsScopedHandle(t *testing.T) {
	db := testutil.OpenTestDB(t)

	called := false
	h := service.ResolveHandle(db, func() (*database.Handle, error) {
		called = true
		return &database.Handle{DB: db, Privileged: true}, nil
	}, uuid.Nil)

	if h.Privileged {
		t.Fatal("nil auth user must not get privileged handle")
	}
	if called {
		t.Fatal("service handle must not be opened for anonymous callers")
	}
}

func TestResolveHandle_ResidentGetsScopedHandle(t *testing.T) {
	db := testutil.OpenTestDB(t)

	authID := uuid.New()
	accountType := constants.AccountTypeResident
	person := personModel.PersonModel{
		AuthUserID:  &authID,
		FirstName:   "Pat",
		LastName:    "Morales",
		AccountType: &accountType,
	}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("seed person: %v", err)
	}

	h := service.ResolveHandle(db, func() (*database.Handle, error) {
		t.Fatal("service handle must not be opened for residents")
		return nil, nil
	}, authID)

	if h.Privileged {
		t.Fatal("resident must not get privileged handle")
	}
	if h.DB != db {
		t.Fatal("resident must keep the handle they came in with")
	}
}

func TestResolveHandle_AdminGetsPrivilegedHandle(t *testing.T) {
	db := testutil.OpenTestDB(t)

	authID := uuid.New()
	accountType := constants.AccountTypeHOAAdmin
	person := personModel.PersonModel{
		AuthUserID:  &authID,
		FirstName:   "Dana",
		LastName:    "Whitfield",
		AccountType: &accountType,
	}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("seed person: %v", err)
	}

	privileged := &database.Handle{DB: db, Privileged: true}
	h := service.ResolveHandle(db, func() (*database.Handle, error) {
		return privileged, nil
	}, authID)

	if h != privileged {
		t.Fatal("admin must get the service handle")
	}
}

func TestResolveHandle_FailOpenDowngradeIsAudited(t *testing.T) {
	db := testutil.OpenTestDB(t)

	authID := uuid.New()
	accountType := constants.AccountTypeHOAAdmin
	person := personModel.PersonModel{
		AuthUserID:  &authID,
		FirstName:   "Dana",
		LastName:    "Whitfield",
		AccountType: &accountType,
	}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("seed person: %v", err)
	}

	h := service.ResolveHandle(db, func() (*database.Handle, error) {
		return nil, errors.New("service credentials missing")
	}, authID)

	if h.Privileged {
		t.Fatal("downgrade must not hand out a privileged handle")
	}
	if h.DB != db {
		t.Fatal("downgrade must fall back to the request handle")
	}

	var entry auditModel.AuditLogModel
	if err := db.First(&entry, "action = ?", "privilege_downgrade").Error; err != nil {
		t.Fatalf("expected a downgrade audit entry: %v", err)
	}
	if entry.Actor != "Dana Whitfield" {
		t.Fatalf("audit actor = %q, want display name", entry.Actor)
	}
	if entry.EntityID == nil || *entry.EntityID != person.PersonID.String() {
		t.Fatal("audit entry must reference the downgraded person")
	}
}
