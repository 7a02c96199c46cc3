package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Indicators maps friendly names to World Bank indicator codes
var Indicators = map[string]string{
	"gdp":          "NY.GDP.MKTP.CD", // GDP (current US$)
	"inflation":    "FP.CPI.TOTL.ZG", // Inflation, consumer prices (annual %)
	"unemployment": "SL.UEM.TOTL.ZS", // Unemployment, total (% of labor force)
}

// PopularCountries is the fallback country registry used when the live
// country list is unavailable
var PopularCountries = map[string]string{
	"USA": "United States",
	"CHN": "China",
	"JPN": "Japan",
	"DEU": "Germany",
	"GBR": "United Kingdom",
	"IND": "India",
	"FRA": "France",
	"BRA": "Brazil",
	"ITA": "Italy",
	"CAN": "Canada",
	"KOR": "Korea, Rep.",
	"RUS": "Russian Federation",
	"AUS": "Australia",
	"MEX": "Mexico",
	"IDN": "Indonesia",
	"NLD": "Netherlands",
	"SAU": "Saudi Arabia",
	"TUR": "Turkey",
	"CHE": "Switzerland",
	"POL": "Poland",
	"ESP": "Spain",
	"ZAF": "South Africa",
	"ARG": "Argentina",
	"NGA": "Nigeria",
	"EGY": "Egypt, Arab Rep.",
}

// IndicatorCode resolves a friendly indicator name to its provider code.
// Unknown names are passed through unchanged so raw codes keep working.
func IndicatorCode(name string) string {
	if code, ok := Indicators[name]; ok {
		return code
	}
	return name
}

// wbCountry is one entry of the /country listing
type wbCountry struct {
	ISO2Code    string `json:"iso2Code"`
	Name        string `json:"name"`
	CapitalCity string `json:"capitalCity"`
}

// ListCountries fetches the live country registry, filtered to actual
// countries (regions and aggregates carry no capital city). Any failure
// degrades to the popular-country fallback.
func (c *Client) ListCountries(ctx context.Context) map[string]string {
	countries, err := c.listCountries(ctx)
	if err != nil || len(countries) == 0 {
		return PopularCountries
	}
	return countries
}

func (c *Client) listCountries(ctx context.Context) (map[string]string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("per_page", "500")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/country?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from provider", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("short envelope from provider")
	}

	var entries []wbCountry
	if err := json.Unmarshal(envelope[1], &entries); err != nil {
		return nil, err
	}

	countries := make(map[string]string)
	for _, entry := range entries {
		if entry.CapitalCity == "" {
			continue
		}
		if len(entry.ISO2Code) == 2 || len(entry.ISO2Code) == 3 {
			countries[entry.ISO2Code] = entry.Name
		}
	}
	return countries, nil
}
