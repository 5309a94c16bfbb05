package controller_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	database "hoaportal_backend/internals/databases"
	"hoaportal_backend/internals/features/surveys/definition/controller"
	"hoaportal_backend/internals/features/surveys/definition/dto"
	surveyModel "hoaportal_backend/internals/features/surveys/definition/model"
	"hoaportal_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestSurveyApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := testutil.NewTestApp(t)

	sc := &controller.SurveyController{
		DB: db,
		ServiceHandle: func() (*database.Handle, error) {
			return nil, errors.New("no service credentials in tests")
		},
	}
	app.Get("/api/surveys", sc.GetSurveys)
	app.Post("/api/surveys/create", sc.CreateSurvey)
	app.Get("/api/surveys/:id", sc.GetSurvey)
	app.Put("/api/surveys/:id", sc.UpdateSurvey)
	return app, db
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]json.RawMessage {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, raw)
	}
	return envelope.Data
}

func TestCreateSurvey_RoundTrip(t *testing.T) {
	app, db := newTestSurveyApp(t)

	resp, err := app.Test(jsonReq(http.MethodPost, "/api/surveys/create",
		`{"survey_name":"Spring 2024 Community Survey","survey_type":"landscaping","is_active":true}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	data := decodeEnvelope(t, resp)
	var created surveyModel.SurveyDefinitionModel
	if err := json.Unmarshal(data["survey"], &created); err != nil {
		t.Fatalf("decode survey: %v", err)
	}
	if created.SurveyName != "Spring 2024 Community Survey" {
		t.Fatalf("survey_name = %q", created.SurveyName)
	}
	if created.IsActive == nil || !*created.IsActive {
		t.Fatal("is_active must survive the round trip")
	}

	// empty schema defaults to {}
	if string(created.ResponseSchema) != "{}" {
		t.Fatalf("response_schema = %s, want {}", created.ResponseSchema)
	}

	getResp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/surveys/"+created.SurveyDefinitionID.String(), nil))
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", getResp.StatusCode)
	}

	var count int64
	db.Model(&surveyModel.SurveyDefinitionModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("survey rows = %d, want 1", count)
	}
}

func TestCreateSurvey_RequiresNameAndType(t *testing.T) {
	app, db := newTestSurveyApp(t)

	resp, err := app.Test(jsonReq(http.MethodPost, "/api/surveys/create",
		`{"survey_name":"No type"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var count int64
	db.Model(&surveyModel.SurveyDefinitionModel{}).Count(&count)
	if count != 0 {
		t.Fatal("invalid create must not write a row")
	}
}

func TestGetSurvey_UnknownIDIs404(t *testing.T) {
	app, _ := newTestSurveyApp(t)

	// malformed uuid and unknown uuid both read as not-found
	for _, id := range []string{"not-a-uuid", "3b0f4e8c-9f38-4e59-a9aa-111111111111"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/surveys/"+id, nil))
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("status for %s = %d, want 404", id, resp.StatusCode)
		}
	}
}

func TestUpdateSurvey_PartialUpdateShowsInList(t *testing.T) {
	app, db := newTestSurveyApp(t)

	createResp, err := app.Test(jsonReq(http.MethodPost, "/api/surveys/create",
		`{"survey_name":"Spring 2024 Community Survey","survey_type":"landscaping"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	data := decodeEnvelope(t, createResp)
	var created surveyModel.SurveyDefinitionModel
	if err := json.Unmarshal(data["survey"], &created); err != nil {
		t.Fatalf("decode survey: %v", err)
	}

	id := created.SurveyDefinitionID.String()
	resp, err := app.Test(jsonReq(http.MethodPut, "/api/surveys/"+id,
		`{"survey_name":"Spring 2024 Community Survey (final)","is_active":false}`))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}

	var reloaded surveyModel.SurveyDefinitionModel
	if err := db.First(&reloaded, "survey_definition_id = ?", created.SurveyDefinitionID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.SurveyName != "Spring 2024 Community Survey (final)" {
		t.Fatalf("survey_name = %q, rename not persisted", reloaded.SurveyName)
	}
	if reloaded.IsActive == nil || *reloaded.IsActive {
		t.Fatal("is_active=false not persisted")
	}
	// untouched field survives a partial update
	if reloaded.SurveyType != "landscaping" {
		t.Fatalf("survey_type = %q, must be untouched", reloaded.SurveyType)
	}

	// the list endpoint reflects the update
	listResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/surveys", nil))
	if err != nil {
		t.Fatalf("list request: %v", err)
	}
	listData := decodeEnvelope(t, listResp)
	var rows []dto.SurveySummaryDTO
	if err := json.Unmarshal(listData["surveys"], &rows); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	found := false
	for _, row := range rows {
		if row.SurveyDefinitionID == id {
			found = true
			if row.SurveyName != "Spring 2024 Community Survey (final)" {
				t.Fatalf("list shows survey_name = %q, update not reflected", row.SurveyName)
			}
			if row.IsActive == nil || *row.IsActive {
				t.Fatal("list shows is_active true, update not reflected")
			}
		}
	}
	if !found {
		t.Fatal("updated survey missing from the list")
	}
}

func TestUpdateSurvey_UnknownIDIs404(t *testing.T) {
	app, _ := newTestSurveyApp(t)

	resp, err := app.Test(jsonReq(http.MethodPut,
		"/api/surveys/3b0f4e8c-9f38-4e59-a9aa-111111111111",
		`{"survey_name":"ghost"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
