package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"
	"leafdeals/internal/pkg/geo"
)

// Client resolves postal codes against an external geocoding service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.ClientsConfig) *Client {
	return &Client{
		baseURL: cfg.GeocoderBaseURL,
		apiKey:  cfg.GeocoderAPIKey,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type lookupResponse struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	City   string  `json:"city"`
	Region string  `json:"region"`
}

// Resolve looks up a postal code. A 404 from the service means the code is
// unknown, which is reported as (nil, nil) rather than an error.
func (c *Client) Resolve(ctx context.Context, postalCode string) (*geo.Location, error) {
	endpoint := fmt.Sprintf("%s/v1/postal/%s", c.baseURL, url.PathEscape(postalCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build geocode request")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, errs.New(fmt.Sprintf("geocode service returned %s", resp.Status))
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode geocode response")
	}
	return &geo.Location{
		Point:  geo.Point{Lat: body.Lat, Lng: body.Lng},
		City:   body.City,
		Region: body.Region,
	}, nil
}
