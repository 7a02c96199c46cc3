package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-econ-trends/internal/model"
)

// DefaultBaseURL is the World Bank Open Data API endpoint
const DefaultBaseURL = "https://api.worldbank.org/v2"

// DefaultFetchDelay is the politeness pause between per-country requests
const DefaultFetchDelay = 100 * time.Millisecond

// Client fetches indicator observations from the World Bank API.
// It is safe to reuse across requests; the underlying http.Client keeps
// connections alive.
type Client struct {
	baseURL string
	httpc   *http.Client
	delay   time.Duration
}

// NewClient builds a client against baseURL. An empty baseURL selects the
// public World Bank endpoint; delay < 0 selects the default politeness delay.
func NewClient(baseURL string, delay time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if delay < 0 {
		delay = DefaultFetchDelay
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		delay:   delay,
	}
}

// FetchResult is the outcome of one country's request: either a table
// fragment or a failure reason, never both
type FetchResult struct {
	CountryCode string      `json:"country_code"`
	Table       model.Table `json:"table,omitempty"`
	Err         error       `json:"-"`
}

// FetchIndicator fetches one indicator for every country in the query,
// one request per country. A failing country is logged, reported in the
// returned results, and contributes zero observations; the call itself
// only errors on a nil context or similar programming mistakes, never on
// upstream trouble. The returned table is sorted by (country, year) and is
// an explicit empty table when nothing was obtainable.
func (c *Client) FetchIndicator(ctx context.Context, q model.Query) (model.Table, []FetchResult) {
	codes := q.NormalizedCountries()
	table := model.Table{}
	results := make([]FetchResult, 0, len(codes))
	seen := make(map[string]bool) // (code, year) guard

	for i, code := range codes {
		if i > 0 && c.delay > 0 {
			time.Sleep(c.delay) // be nice to the API
		}

		fragment, err := c.fetchCountry(ctx, q.Indicator, code, q.StartYear, q.EndYear)
		if err != nil {
			log.Printf("❌ Fetch failed for %s/%s: %v", code, q.Indicator, err)
			results = append(results, FetchResult{CountryCode: code, Err: err})
			continue
		}

		for _, obs := range fragment {
			key := obs.CountryCode + ":" + strconv.Itoa(obs.Year)
			if seen[key] {
				continue
			}
			seen[key] = true
			table = append(table, obs)
		}
		results = append(results, FetchResult{CountryCode: code, Table: fragment})
	}

	table.SortByCountryYear()
	return table, results
}

// wbEntry is one record inside the World Bank response envelope
type wbEntry struct {
	Country struct {
		Value string `json:"value"`
	} `json:"country"`
	CountryISO3 string   `json:"countryiso3code"`
	Date        string   `json:"date"`
	Value       *float64 `json:"value"`
}

// wbMeta is the first element of the envelope
type wbMeta struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// fetchCountry drains all pages for a single (country, indicator) pair
func (c *Client) fetchCountry(ctx context.Context, indicator, code string, startYear, endYear int) (model.Table, error) {
	var out model.Table

	for page := 1; ; page++ {
		entries, meta, err := c.fetchPage(ctx, indicator, code, startYear, endYear, page)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if e.Value == nil {
				continue // missing years are dropped, never coerced to zero
			}
			year, err := strconv.Atoi(e.Date)
			if err != nil {
				continue
			}
			isoCode := e.CountryISO3
			if isoCode == "" {
				isoCode = code
			}
			out = append(out, model.Observation{
				Country:     e.Country.Value,
				CountryCode: isoCode,
				Year:        year,
				Value:       *e.Value,
			})
		}

		if meta.Pages <= 0 || page >= meta.Pages {
			return out, nil
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, indicator, code string, startYear, endYear, page int) ([]wbEntry, wbMeta, error) {
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s", c.baseURL, url.PathEscape(code), url.PathEscape(indicator))

	params := url.Values{}
	params.Set("date", fmt.Sprintf("%d:%d", startYear, endYear))
	params.Set("format", "json")
	params.Set("per_page", "1000")
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, wbMeta{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, wbMeta{}, fmt.Errorf("failed to GET indicator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wbMeta{}, fmt.Errorf("unexpected status %d from provider", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wbMeta{}, fmt.Errorf("failed to read response body: %w", err)
	}

	// The API wraps records in a [metadata, records] envelope
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, wbMeta{}, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if len(envelope) < 2 {
		return nil, wbMeta{}, nil // no records for this query
	}

	var meta wbMeta
	if err := json.Unmarshal(envelope[0], &meta); err != nil {
		meta = wbMeta{}
	}

	var entries []wbEntry
	if string(envelope[1]) == "null" {
		return nil, meta, nil
	}
	if err := json.Unmarshal(envelope[1], &entries); err != nil {
		return nil, wbMeta{}, fmt.Errorf("failed to decode records: %w", err)
	}
	return entries, meta, nil
}
