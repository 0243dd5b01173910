package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"leafdeals/internal/domain/deal"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"
	"leafdeals/internal/usecase/commands"

	"github.com/PuerkitoBio/goquery"
)

// Menu pages bury deal copy in markup; only text blocks of a plausible size
// are worth sending to the extraction provider.
const (
	minBlockLen = 8
	maxBlockLen = 500
	maxBlocks   = 200
)

// Client fetches a source's menu page, strips it down to candidate text
// blocks, and sends those to the extraction provider for structuring.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	provider  *http.Client
	fetcher   *http.Client
}

func NewClient(cfg config.ClientsConfig) *Client {
	return &Client{
		baseURL:   cfg.ExtractorBaseURL,
		apiKey:    cfg.ExtractorAPIKey,
		userAgent: cfg.MenuFetchUserAgent,
		provider:  &http.Client{Timeout: cfg.HTTPTimeout},
		fetcher:   &http.Client{Timeout: cfg.MenuFetchTimeout},
	}
}

type extractRequest struct {
	SourceName string   `json:"source_name"`
	Blocks     []string `json:"blocks"`
}

type extractResponse struct {
	Deals []extractedDeal `json:"deals"`
}

type extractedDeal struct {
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	ProductName string  `json:"product_name"`
	PriceText   string  `json:"price_text"`
	Confidence  float64 `json:"confidence"`
}

// Extract fetches the target's menu page and asks the provider to structure
// its text into deal candidates. An empty candidate list is a valid result;
// callers decide how to score it.
func (c *Client) Extract(ctx context.Context, target commands.ExtractionTarget) ([]deal.Candidate, error) {
	blocks, err := c.fetchTextBlocks(ctx, target.MenuURL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch menu page")
	}
	if len(blocks) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(extractRequest{SourceName: target.SourceName, Blocks: blocks})
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal extraction request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build extraction request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.provider.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "extraction request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("extraction service returned %s", resp.Status))
	}

	var body extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode extraction response")
	}

	cands := make([]deal.Candidate, 0, len(body.Deals))
	for _, d := range body.Deals {
		cands = append(cands, deal.Candidate{
			Category:    d.Category,
			Title:       d.Title,
			Brand:       d.Brand,
			ProductName: d.ProductName,
			PriceText:   d.PriceText,
			Confidence:  d.Confidence,
		})
	}
	return cands, nil
}

// fetchTextBlocks downloads the menu page and pulls out visible text blocks
// likely to contain deal copy.
func (c *Client) fetchTextBlocks(ctx context.Context, menuURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, menuURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.fetcher.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("menu page returned %s", resp.Status))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	doc.Find("script, style, noscript, svg").Remove()

	seen := make(map[string]bool)
	var blocks []string
	doc.Find("li, p, h1, h2, h3, h4, td, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Children().Length() > 0 {
			return true
		}
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if len(text) < minBlockLen || len(text) > maxBlockLen || seen[text] {
			return true
		}
		seen[text] = true
		blocks = append(blocks, text)
		return len(blocks) < maxBlocks
	})
	return blocks, nil
}
