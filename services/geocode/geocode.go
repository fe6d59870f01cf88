package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cleansync/config"
)

// Service suggests formatted addresses for a free-text query.
type Service interface {
	Autocomplete(ctx context.Context, query, country string, limit int) ([]string, error)
}

// HTTPGeocoder calls the geocoding autocomplete REST API: a GET with the
// free-text query, a country filter and a result limit, answered with a JSON
// feature list carrying formatted address strings.
type HTTPGeocoder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPGeocoder builds a geocoder from the application configuration.
func NewHTTPGeocoder() *HTTPGeocoder {
	return &HTTPGeocoder{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: config.AppConfig.GeocodeURL,
		apiKey:  config.AppConfig.GeocodeKey,
	}
}

type autocompleteResponse struct {
	Features []struct {
		Properties struct {
			Formatted string `json:"formatted"`
		} `json:"properties"`
	} `json:"features"`
}

// Autocomplete returns up to limit formatted address suggestions.
func (g *HTTPGeocoder) Autocomplete(ctx context.Context, query, country string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("apiKey", g.apiKey)
	if country != "" {
		params.Set("filter", "countrycode:"+country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var decoded autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("geocode: failed to decode response: %w", err)
	}

	suggestions := make([]string, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		if f.Properties.Formatted != "" {
			suggestions = append(suggestions, f.Properties.Formatted)
		}
	}
	return suggestions, nil
}
