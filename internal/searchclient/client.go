package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// searchPageSize is the page size requested by the search page: large enough
// to populate the map and list views in one fetch.
const searchPageSize = 100

// Facilities mirrors the endpoint's facility flags.
type Facilities struct {
	Shed        bool `json:"shed"`
	Toilet      bool `json:"toilet"`
	Water       bool `json:"water"`
	Electricity bool `json:"electricity"`
	Signal5G    bool `json:"signal5g"`
	Signal4G    bool `json:"signal4g"`
	Parking     bool `json:"parking"`
}

// ProviderSummary mirrors the endpoint's denormalized owner block.
type ProviderSummary struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// Listing mirrors the endpoint's listing shape.
type Listing struct {
	ID            string          `json:"id"`
	Name          *string         `json:"name"`
	Prefecture    string          `json:"prefecture"`
	City          string          `json:"city"`
	Address       string          `json:"address"`
	Area          float64         `json:"area"`
	Price         *int64          `json:"price"`
	Description   *string         `json:"description"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	AvailableFrom time.Time       `json:"availableFrom"`
	AvailableTo   *time.Time      `json:"availableTo"`
	Images        []string        `json:"images"`
	Facilities    Facilities      `json:"facilities"`
	Status        string          `json:"status"`
	Provider      ProviderSummary `json:"provider"`
}

// Pagination mirrors the endpoint's paging metadata.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// SearchResponse is the payload of the listing retrieval endpoint.
type SearchResponse struct {
	Data       []Listing  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Client calls the listing retrieval endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL (scheme and host,
// without the /api prefix).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search fetches one page of listings for the filter state. Non-2xx
// responses are errors; the caller decides how to degrade.
func (c *Client) Search(ctx context.Context, filter FilterState) (*SearchResponse, error) {
	values := filter.Values()
	values.Set("limit", strconv.Itoa(searchPageSize))

	reqURL := c.baseURL + "/api/farmland?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing endpoint returned status %d", resp.StatusCode)
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}
