// Package calendar fetches upcoming economic events from an external
// calendar API.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Event is one calendar entry as returned by the API
type Event struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Impact      string    `json:"impact"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
}

// Client calls the economic calendar REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new calendar API client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchEvents retrieves the upcoming events from the API
func (c *Client) FetchEvents(ctx context.Context) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events", nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch economic events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode calendar response: %w", err)
	}
	return events, nil
}
