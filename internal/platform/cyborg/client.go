// Package cyborg is the HTTP client for the Cyborg vector search service.
// Cyborg holds a denormalized copy of ended encounters and answers semantic
// queries over them; it is never the system of record.
package cyborg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to a Cyborg instance over HTTP. All calls are bounded by the
// client timeout so a slow index can never stall a caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the Cyborg service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type upsertRequest struct {
	EncounterID string                 `json:"encounter_id"`
	HospitalID  string                 `json:"hospital_id"`
	Payload     map[string]interface{} `json:"payload"`
}

// SearchResult is one hit returned from a Cyborg query. Encounter carries the
// denormalized document exactly as it was indexed at upsert time.
type SearchResult struct {
	EncounterID uuid.UUID              `json:"encounter_id"`
	HospitalID  uuid.UUID              `json:"hospital_id"`
	Score       float64                `json:"score"`
	Encounter   map[string]interface{} `json:"encounter"`
}

type searchRequest struct {
	Query       string   `json:"query"`
	HospitalIDs []string `json:"hospital_ids"`
	TopK        int      `json:"top_k"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Upsert pushes a fully resolved encounter document into the index,
// overwriting any previous version of the same encounter.
func (c *Client) Upsert(ctx context.Context, encounterID, hospitalID uuid.UUID, payload map[string]interface{}) error {
	body, err := json.Marshal(upsertRequest{
		EncounterID: encounterID.String(),
		HospitalID:  hospitalID.String(),
		Payload:     payload,
	})
	if err != nil {
		return fmt.Errorf("marshal upsert request: %w", err)
	}

	return c.post(ctx, "/upsert-encounter", body, nil)
}

// Search runs a semantic query scoped to the given hospitals and returns at
// most topK hits ordered by score.
func (c *Client) Search(ctx context.Context, query string, hospitalIDs []uuid.UUID, topK int) ([]SearchResult, error) {
	ids := make([]string, 0, len(hospitalIDs))
	for _, id := range hospitalIDs {
		ids = append(ids, id.String())
	}

	body, err := json.Marshal(searchRequest{
		Query:       query,
		HospitalIDs: ids,
		TopK:        topK,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	var resp searchResponse
	if err := c.post(ctx, "/search", body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Health checks that the Cyborg service is reachable and answering.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cyborg health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cyborg health check: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cyborg %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a bounded slice of the body for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("cyborg %s: status %d: %s", path, resp.StatusCode, snippet)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode cyborg response: %w", err)
		}
	}
	return nil
}
