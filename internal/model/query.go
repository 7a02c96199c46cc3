package model

import (
	"sort"
	"strings"
)

// Query describes one data request: an indicator across a set of countries
// over an inclusive year range
type Query struct {
	Indicator string   `json:"indicator"`
	Countries []string `json:"countries"`
	StartYear int      `json:"start_year"`
	EndYear   int      `json:"end_year"`
}

// NormalizedCountries returns the country codes upper-cased, deduplicated,
// and sorted. Cache keys and network calls both work off this canonical
// form so that the same countries in a different order or case describe
// the same query.
func (q Query) NormalizedCountries() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, c := range q.Countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
