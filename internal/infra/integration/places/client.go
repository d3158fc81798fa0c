package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/leadmapr/leadmapr/internal/entity"
)

const (
	defaultBaseURL = "https://places.googleapis.com/v1"
	pageSize       = 20
)

// fieldMask keeps the Places bill down: only the fields Lead carries.
var fieldMask = strings.Join([]string{
	"places.id",
	"places.displayName",
	"places.formattedAddress",
	"places.nationalPhoneNumber",
	"places.websiteUri",
	"places.rating",
	"places.userRatingCount",
}, ",")

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchText runs a "<keyword> in <location>" text search and maps the
// result to Leads.
func (c *Client) SearchText(ctx context.Context, keyword, location string) ([]entity.Lead, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("google places api key not configured")
	}

	payload := searchTextRequest{
		TextQuery: fmt.Sprintf("%s in %s", keyword, location),
		PageSize:  pageSize,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/places:searchText", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("places api error (status %d): %s", resp.StatusCode, string(body))
	}

	var response searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	leads := make([]entity.Lead, 0, len(response.Places))
	for _, p := range response.Places {
		leads = append(leads, p.toLead())
	}
	return leads, nil
}

func (p place) toLead() entity.Lead {
	name := "Unknown"
	if p.DisplayName != nil && p.DisplayName.Text != "" {
		name = p.DisplayName.Text
	}

	lead := entity.Lead{
		PlaceID: p.ID,
		Name:    name,
		Address: p.FormattedAddress,
		MapsURL: fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", p.ID),
	}

	if p.NationalPhoneNumber != "" {
		phone := p.NationalPhoneNumber
		lead.Phone = &phone
	}
	if p.WebsiteURI != "" {
		website := p.WebsiteURI
		lead.Website = &website
	}
	if p.Rating != nil {
		lead.Rating = p.Rating
	}
	if p.UserRatingCount != nil {
		lead.ReviewCount = p.UserRatingCount
	}

	return lead
}
