// Package revalidate signals the dashboard frontend that cached pages for
// given paths are stale. The frontend owns the cache; every call here is
// advisory and failures are logged, never returned to the caller.
package revalidate

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

var (
	endpoint string
	token    string

	httpClient = &http.Client{Timeout: 3 * time.Second}
)

// Configure points the signaler at the frontend's revalidation webhook.
// Called once at startup; tests point it at a local server.
func Configure(url, bearer string) {
	endpoint = url
	token = bearer
}

// SurveyCache invalidates the survey list views and, when an id is given,
// that survey's detail and edit views.
func SurveyCache(surveyID string) {
	paths := []string{"/surveys", "/api/surveys"}
	if surveyID != "" {
		paths = append(paths,
			"/surveys/"+surveyID,
			"/surveys/"+surveyID+"/edit",
			"/api/surveys/"+surveyID,
		)
	}
	Paths(paths...)
}

// ResponseViews invalidates a response's detail view and the responses list.
func ResponseViews(responseID string) {
	Paths("/responses/"+responseID, "/responses")
}

// Paths posts the given view paths to the revalidation webhook.
func Paths(paths ...string) {
	if len(paths) == 0 {
		return
	}
	if endpoint == "" {
		log.Printf("[WARNING] revalidate: no endpoint configured, skipping %v", paths)
		return
	}

	body, err := json.Marshal(map[string][]string{"paths": paths})
	if err != nil {
		log.Printf("[ERROR] revalidate: marshal: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("[ERROR] revalidate: build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] revalidate: post: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("[ERROR] revalidate: webhook returned %s", resp.Status)
		return
	}
	log.Printf("🔄 Revalidated %d path(s): %v", len(paths), paths)
}
