package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// HTTPClient implements DataSource by calling the SmartGym REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but the
// tracker lives on a remote server (typically reached over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The
// API key is only needed for the mutating tools.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	body, err := c.get(ctx, "/api/v1/logs", nil)
	if err != nil {
		return nil, err
	}

	var logs []models.WorkoutLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("httpclient: decode logs: %w", err)
	}
	return logs, nil
}

func (c *HTTPClient) ListCompletedExercises(ctx context.Context) ([]models.CompletedExercise, error) {
	body, err := c.get(ctx, "/api/v1/completed", nil)
	if err != nil {
		return nil, err
	}

	var records []models.CompletedExercise
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode completed exercises: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	body, err := c.get(ctx, "/api/v1/routines", nil)
	if err != nil {
		return nil, err
	}

	var routines []models.Routine
	if err := json.Unmarshal(body, &routines); err != nil {
		return nil, fmt.Errorf("httpclient: decode routines: %w", err)
	}
	return routines, nil
}

func (c *HTTPClient) Recommendation(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/api/v1/recommendation", nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Recommendation string `json:"recommendation"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("httpclient: decode recommendation: %w", err)
	}
	return resp.Recommendation, nil
}

func (c *HTTPClient) SuggestWeights(ctx context.Context, muscle string) (string, error) {
	params := url.Values{}
	params.Set("muscle", muscle)

	body, err := c.get(ctx, "/api/v1/suggestion", params)
	if err != nil {
		return "", err
	}

	var resp struct {
		Suggestion string `json:"suggestion"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("httpclient: decode suggestion: %w", err)
	}
	return resp.Suggestion, nil
}

func (c *HTTPClient) LogWorkout(ctx context.Context, exercise, muscle string, weight float64, reps, rpe int) (models.WorkoutLog, error) {
	payload := map[string]any{
		"exerciseName": exercise,
		"muscleGroup":  muscle,
		"weightUsed":   weight,
		"reps":         reps,
		"rpe":          rpe,
	}

	body, err := c.post(ctx, "/api/v1/logs", payload)
	if err != nil {
		return models.WorkoutLog{}, err
	}

	var saved models.WorkoutLog
	if err := json.Unmarshal(body, &saved); err != nil {
		return models.WorkoutLog{}, fmt.Errorf("httpclient: decode saved log: %w", err)
	}
	return saved, nil
}
