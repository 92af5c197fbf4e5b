package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/models"
)

// HTTPClient implements DataSource by calling the runplans REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// plans live on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, data)
	}
	return data, nil
}

func decodeDocument(data []byte) (*PlanDocument, error) {
	var doc PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return &doc, nil
}

func (c *HTTPClient) GeneratePlan(ctx context.Context, profile *models.AthleteProfile, seed int64) (*PlanDocument, error) {
	payload := struct {
		*models.AthleteProfile
		Seed int64 `json:"seed,omitempty"`
	}{profile, seed}

	data, err := c.do(ctx, http.MethodPost, "/api/v1/plans", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

func (c *HTTPClient) GetPlan(ctx context.Context, id uuid.UUID) (*PlanDocument, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/plans/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

func (c *HTTPClient) LatestPlan(ctx context.Context, athleteID int) (*PlanDocument, error) {
	summaries, err := c.ListPlans(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("httpclient: no plans stored")
	}
	return c.GetPlan(ctx, summaries[0].ID)
}

func (c *HTTPClient) ListPlans(ctx context.Context, athleteID int) ([]models.PlanSummary, error) {
	params := url.Values{}
	if athleteID > 0 {
		params.Set("athlete", strconv.Itoa(athleteID))
	}

	data, err := c.do(ctx, http.MethodGet, "/api/v1/plans", params, nil)
	if err != nil {
		return nil, err
	}
	var summaries []models.PlanSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan list: %w", err)
	}
	return summaries, nil
}

func (c *HTTPClient) ApplyRaceDay(ctx context.Context, id uuid.UUID, distance models.RaceDistance, date time.Time) (*PlanDocument, error) {
	payload := map[string]string{
		"distance": string(distance),
		"date":     date.Format("2006-01-02"),
	}
	data, err := c.do(ctx, http.MethodPost, "/api/v1/plans/"+id.String()+"/race-day", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

func (c *HTTPClient) ApplyInjuryRecovery(ctx context.Context, id uuid.UUID, params InjuryParams) (*PlanDocument, error) {
	payload := map[string]any{
		"start_week":     params.StartWeek,
		"duration_weeks": params.DurationWeeks,
		"reduce_days":    params.ReduceDays,
		"equipment":      params.Equipment,
	}
	data, err := c.do(ctx, http.MethodPost, "/api/v1/plans/"+id.String()+"/injury", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

func (c *HTTPClient) RevertPlan(ctx context.Context, id uuid.UUID) (*PlanDocument, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/plans/"+id.String()+"/revert", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}
