package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"
	"leafdeals/internal/usecase/commands"
)

// Client searches an external places directory for retail locations.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.ClientsConfig) *Client {
	return &Client{
		baseURL: cfg.DiscoveryBaseURL,
		apiKey:  cfg.DiscoveryAPIKey,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type searchRequest struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusMeters int     `json:"radius_meters"`
	MaxResults   int     `json:"max_results"`
	Category     string  `json:"category"`
}

type searchResponse struct {
	Results []placeResult `json:"results"`
}

type placeResult struct {
	PlaceID *string `json:"place_id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Phone   *string `json:"phone"`
	Website *string `json:"website"`
}

// Search finds dispensary locations around a point. An empty result list is
// a valid answer for sparsely covered areas.
func (c *Client) Search(ctx context.Context, lat, lng float64, radiusMeters, maxResults int) ([]commands.DiscoveredSource, error) {
	payload, err := json.Marshal(searchRequest{
		Lat:          lat,
		Lng:          lng,
		RadiusMeters: radiusMeters,
		MaxResults:   maxResults,
		Category:     "cannabis_dispensary",
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal places search")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/search", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build places request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "places request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("places service returned %s", resp.Status))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode places response")
	}

	found := make([]commands.DiscoveredSource, 0, len(body.Results))
	for _, r := range body.Results {
		found = append(found, commands.DiscoveredSource{
			StableID: r.PlaceID,
			Name:     r.Name,
			Address:  r.Address,
			Lat:      r.Lat,
			Lng:      r.Lng,
			Phone:    r.Phone,
			Website:  r.Website,
		})
	}
	return found, nil
}
