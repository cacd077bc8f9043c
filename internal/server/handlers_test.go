package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cyb3rh4ck/SmartGym/internal/session"
	"github.com/Cyb3rh4ck/SmartGym/internal/storage"
	"github.com/Cyb3rh4ck/SmartGym/internal/tracker"
)

const testKey = "test-key"

func testServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smartgym.db")
	if err := storage.RunMigrations(storage.DriverSQLite, path); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := storage.Open(context.Background(), storage.DriverSQLite, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tr := tracker.New(db, log)
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return New(tr, testKey, log)
}

func doJSON(t *testing.T, s *Server, method, path string, body any, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if auth {
		req.Header.Set("X-API-Key", testKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestHealth verifies the unauthenticated health endpoint.
func TestHealth(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/health", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// TestCreateLogRequiresAPIKey verifies mutating routes reject requests
// without the key.
func TestCreateLogRequiresAPIKey(t *testing.T) {
	s := testServer(t)

	body := map[string]any{"exerciseName": "Squat", "muscleGroup": "Legs", "weightUsed": 100, "reps": 5, "rpe": 8}
	if rec := doJSON(t, s, http.MethodPost, "/api/v1/logs", body, false); rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logs", strings.NewReader("{}"))
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", rec.Code)
	}
}

// TestLogLifecycle verifies create, list, update, and delete over HTTP.
func TestLogLifecycle(t *testing.T) {
	s := testServer(t)

	body := map[string]any{"exerciseName": "Squat", "muscleGroup": "Legs", "weightUsed": 100, "reps": 5, "rpe": 8}
	rec := doJSON(t, s, http.MethodPost, "/api/v1/logs", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/logs", nil, false)
	var logs []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&logs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(logs))
	}

	logPath := fmt.Sprintf("/api/v1/logs/%d", created.ID)
	update := map[string]any{"exerciseName": "Front Squat", "muscleGroup": "Legs", "weightUsed": 90, "reps": 5, "rpe": 8}
	rec = doJSON(t, s, http.MethodPut, logPath, update, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, s, http.MethodDelete, logPath, nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodDelete, logPath, nil, true); rec.Code != http.StatusNotFound {
		t.Errorf("double delete: status = %d, want 404", rec.Code)
	}
}

// TestCreateLogValidation verifies a rejected write returns 400.
func TestCreateLogValidation(t *testing.T) {
	s := testServer(t)
	body := map[string]any{"exerciseName": "", "muscleGroup": "Legs", "weightUsed": 100, "reps": 5, "rpe": 8}
	rec := doJSON(t, s, http.MethodPost, "/api/v1/logs", body, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestRecommendationEndpoint verifies the recommendation reflects history
// changes.
func TestRecommendationEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/recommendation", nil, false)
	var out map[string]string
	json.NewDecoder(rec.Body).Decode(&out)
	if !strings.Contains(out["recommendation"], "full-body") {
		t.Errorf("recommendation = %q, want the welcome message", out["recommendation"])
	}

	body := map[string]any{"exerciseName": "Squat", "muscleGroup": "Legs", "weightUsed": 100, "reps": 5, "rpe": 8}
	doJSON(t, s, http.MethodPost, "/api/v1/logs", body, true)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/recommendation", nil, false)
	json.NewDecoder(rec.Body).Decode(&out)
	if !strings.Contains(out["recommendation"], "Rest") {
		t.Errorf("recommendation = %q, want a rest message", out["recommendation"])
	}
}

// TestSessionFlow drives a whole workout over HTTP: create a routine,
// start it, complete a set, finish, and check completed history.
func TestSessionFlow(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/routines",
		map[string]any{"name": "Push", "exercises": []string{"Bench Press", "Dips"}}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create routine: status = %d, body %s", rec.Code, rec.Body)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	json.NewDecoder(rec.Body).Decode(&created)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/session/start",
		map[string]any{"routineId": created.ID}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("start: status = %d, body %s", rec.Code, rec.Body)
	}
	var active session.Session
	json.NewDecoder(rec.Body).Decode(&active)
	if len(active) != 2 {
		t.Fatalf("session = %+v, want 2 exercises", active)
	}

	setID := active[0].Sets[0].ID
	patch := map[string]any{"weight": "60", "reps": "8", "completed": true}
	rec = doJSON(t, s, http.MethodPatch, "/api/v1/session/exercises/0/sets/"+setID, patch, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: status = %d, body %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/session/finish", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("finish: status = %d, body %s", rec.Code, rec.Body)
	}
	var result struct {
		Saved   int `json:"saved"`
		Skipped int `json:"skipped"`
	}
	json.NewDecoder(rec.Body).Decode(&result)
	if result.Saved != 1 || result.Skipped != 1 {
		t.Errorf("result = %+v, want saved=1 skipped=1", result)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/session", nil, false)
	var after session.Session
	json.NewDecoder(rec.Body).Decode(&after)
	if len(after) != 0 {
		t.Errorf("session after finish = %+v, want empty", after)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/completed", nil, false)
	var completed []map[string]any
	json.NewDecoder(rec.Body).Decode(&completed)
	if len(completed) != 1 {
		t.Errorf("completed = %+v, want 1 record", completed)
	}
}

// TestSuggestionEndpoint verifies the muscle query parameter handling.
func TestSuggestionEndpoint(t *testing.T) {
	s := testServer(t)

	if rec := doJSON(t, s, http.MethodGet, "/api/v1/suggestion", nil, false); rec.Code != http.StatusBadRequest {
		t.Errorf("missing muscle: status = %d, want 400", rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/api/v1/suggestion?muscle=Chest", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out map[string]string
	json.NewDecoder(rec.Body).Decode(&out)
	if !strings.Contains(out["suggestion"], "Start light") {
		t.Errorf("suggestion = %q, want the start-light prompt", out["suggestion"])
	}
}

// TestProfileEndpoints verifies the profile upsert round trip and the 404
// before any save.
func TestProfileEndpoints(t *testing.T) {
	s := testServer(t)

	if rec := doJSON(t, s, http.MethodGet, "/api/v1/profile", nil, false); rec.Code != http.StatusNotFound {
		t.Errorf("fresh profile: status = %d, want 404", rec.Code)
	}

	body := map[string]any{"weight": 82, "height": 180, "goal": "Gain Muscle", "experienceLevel": "Beginner"}
	if rec := doJSON(t, s, http.MethodPut, "/api/v1/profile", body, true); rec.Code != http.StatusOK {
		t.Fatalf("save: status = %d", rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/api/v1/profile", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d", rec.Code)
	}
	var profile map[string]any
	json.NewDecoder(rec.Body).Decode(&profile)
	if profile["goal"] != "Gain Muscle" {
		t.Errorf("goal = %v, want Gain Muscle", profile["goal"])
	}
}
