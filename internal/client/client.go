// Package client talks to the SunShare API the way the browser frontend
// does: it degrades to demo listings when the API cannot be reached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sunshare/internal/models"
	"sunshare/internal/responses"
)

// DemoWarning is shown when the listings could not be loaded.
const DemoWarning = "Could not load properties. Using demo data."

// DemoProperties are shown when the API is unreachable. They are distinct from
// the server's own mock data.
func DemoProperties() []models.WireProperty {
	return []models.WireProperty{
		{ID: "demo-1", Title: "Demo Solar Farm", Location: "Austin, TX", ROI: models.Float(15), Price: models.Float(450), FundedPercentage: 72, Capacity: models.Float(25)},
		{ID: "demo-2", Title: "Demo Rooftop", Location: "Phoenix, AZ", ROI: models.Float(17), Price: models.Float(520), FundedPercentage: 45, Capacity: models.Float(18)},
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log.With("component", "api_client"),
	}
}

// Listings is what the browse view renders.
type Listings struct {
	Properties []models.WireProperty
	// Source is the X-Data-Source header, or "demo".
	Source  string
	Warning string
}

// FetchProperties never fails; on any request failure it returns the demo
// listings with DemoWarning.
func (c *Client) FetchProperties(ctx context.Context) Listings {
	props, source, err := c.ListProperties(ctx)
	if err != nil {
		c.log.Warn("Failed to load properties", "error", err)
		return Listings{Properties: DemoProperties(), Source: "demo", Warning: DemoWarning}
	}
	return Listings{Properties: props, Source: source}
}

// ListProperties calls GET /api/properties. A successful response whose body
// is not an array yields an empty list.
func (c *Client) ListProperties(ctx context.Context) ([]models.WireProperty, string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/properties", nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, "", err
	}

	var props []models.WireProperty
	if err := json.NewDecoder(resp.Body).Decode(&props); err != nil || props == nil {
		props = []models.WireProperty{}
	}
	return props, resp.Header.Get("X-Data-Source"), nil
}

// CreateProperty calls POST /api/properties.
func (c *Client) CreateProperty(ctx context.Context, req models.CreatePropertyRequest) (*models.WireProperty, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/properties", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var created models.WireProperty
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode created property: %w", err)
	}
	return &created, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var body responses.ErrorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	return &StatusError{StatusCode: resp.StatusCode, Message: body.Error}
}
