package controller_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "hoaportal_backend/internals/databases"
	"hoaportal_backend/internals/features/surveys/response/controller"
	responseModel "hoaportal_backend/internals/features/surveys/response/model"
	personModel "hoaportal_backend/internals/features/users/people/model"
	"hoaportal_backend/internals/testutil"
)

func newResponseController(db *gorm.DB) *controller.ResponseController {
	return &controller.ResponseController{
		DB: db,
		ServiceHandle: func() (*database.Handle, error) {
			return nil, errors.New("no service credentials in tests")
		},
	}
}

func mountReviewRoute(app *fiber.App, rc *controller.ResponseController, authID uuid.UUID) {
	app.Put("/api/a/responses/:id/review",
		testutil.FakeAuth(authID.String(), "admin@hoa.example"), rc.UpdateReview)
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUpdateReview_UsesReviewerDisplayName(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewTestApp(t)

	authID := uuid.New()
	accountType := "hoa_admin"
	person := personModel.PersonModel{
		AuthUserID:  &authID,
		FirstName:   "Dana",
		LastName:    "Whitfield",
		AccountType: &accountType,
	}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("seed person: %v", err)
	}
	if err := db.Create(&responseModel.ResponseModel{ResponseID: "001"}).Error; err != nil {
		t.Fatalf("seed response: %v", err)
	}

	mountReviewRoute(app, newResponseController(db), authID)

	resp, err := app.Test(jsonReq(http.MethodPut, "/api/a/responses/001/review",
		`{"status":"flagged"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var reloaded responseModel.ResponseModel
	if err := db.First(&reloaded, "response_id = ?", "001").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ReviewStatus == nil || *reloaded.ReviewStatus != "flagged" {
		t.Fatal("review_status not persisted")
	}
	if reloaded.ReviewedBy == nil || *reloaded.ReviewedBy != "Dana Whitfield" {
		t.Fatalf("reviewed_by = %v, want the person's display name", reloaded.ReviewedBy)
	}
}

func TestUpdateReview_FallsBackToEmailWithoutProfile(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewTestApp(t)

	if err := db.Create(&responseModel.ResponseModel{ResponseID: "002"}).Error; err != nil {
		t.Fatalf("seed response: %v", err)
	}

	mountReviewRoute(app, newResponseController(db), uuid.New())

	resp, err := app.Test(jsonReq(http.MethodPut, "/api/a/responses/002/review",
		`{"status":"reviewed"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var reloaded responseModel.ResponseModel
	if err := db.First(&reloaded, "response_id = ?", "002").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ReviewedBy == nil || *reloaded.ReviewedBy != "admin@hoa.example" {
		t.Fatalf("reviewed_by = %v, want the auth email", reloaded.ReviewedBy)
	}
}

func TestUpdateReview_RequiresStatus(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewTestApp(t)

	if err := db.Create(&responseModel.ResponseModel{ResponseID: "003"}).Error; err != nil {
		t.Fatalf("seed response: %v", err)
	}

	mountReviewRoute(app, newResponseController(db), uuid.New())

	resp, err := app.Test(jsonReq(http.MethodPut, "/api/a/responses/003/review",
		`{"status":"  "}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var reloaded responseModel.ResponseModel
	if err := db.First(&reloaded, "response_id = ?", "003").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ReviewStatus != nil {
		t.Fatal("rejected review must not write a status")
	}
}

func TestUpdateReview_MissingResponseIs404(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewTestApp(t)

	mountReviewRoute(app, newResponseController(db), uuid.New())

	resp, err := app.Test(jsonReq(http.MethodPut, "/api/a/responses/999/review",
		`{"status":"reviewed"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateReview_RequiresAuth(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewTestApp(t)

	rc := newResponseController(db)
	app.Put("/api/a/responses/:id/review", rc.UpdateReview)

	resp, err := app.Test(jsonReq(http.MethodPut, "/api/a/responses/001/review",
		`{"status":"reviewed"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
