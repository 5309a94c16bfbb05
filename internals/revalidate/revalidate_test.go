package revalidate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"testing"
)

// capture spins up a webhook and records every revalidation payload it gets.
func capture(t *testing.T) (*httptest.Server, *[][]string, *[]string) {
	t.Helper()
	var payloads [][]string
	var authHeaders []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Paths []string `json:"paths"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		payloads = append(payloads, body.Paths)
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { Configure("", "") })
	return srv, &payloads, &authHeaders
}

func TestSurveyCache_PostsAllSurveyViews(t *testing.T) {
	srv, payloads, auth := capture(t)
	Configure(srv.URL, "secret-token")

	SurveyCache("abc-123")

	if len(*payloads) != 1 {
		t.Fatalf("webhook calls = %d, want 1", len(*payloads))
	}
	got := append([]string(nil), (*payloads)[0]...)
	sort.Strings(got)
	want := []string{
		"/api/surveys",
		"/api/surveys/abc-123",
		"/surveys",
		"/surveys/abc-123",
		"/surveys/abc-123/edit",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	if (*auth)[0] != "Bearer secret-token" {
		t.Fatalf("Authorization = %q", (*auth)[0])
	}
}

func TestSurveyCache_ListOnlyWithoutID(t *testing.T) {
	srv, payloads, _ := capture(t)
	Configure(srv.URL, "")

	SurveyCache("")

	got := append([]string(nil), (*payloads)[0]...)
	sort.Strings(got)
	want := []string{"/api/surveys", "/surveys"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
}

func TestResponseViews_PostsDetailAndList(t *testing.T) {
	srv, payloads, _ := capture(t)
	Configure(srv.URL, "")

	ResponseViews("001")

	got := append([]string(nil), (*payloads)[0]...)
	sort.Strings(got)
	want := []string{"/responses", "/responses/001"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
}

func TestPaths_NoEndpointIsNoOp(t *testing.T) {
	Configure("", "")
	// must not panic or block
	Paths("/surveys")
}
