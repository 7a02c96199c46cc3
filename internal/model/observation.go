package model

import "sort"

// Observation is a single (country, year, value) fact for one indicator
type Observation struct {
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Year        int     `json:"year"`
	Value       float64 `json:"value"`
}

// Table is an ordered collection of observations, logically keyed by
// (country_code, year). Ingestion order is not meaningful; consumers sort
// before processing.
type Table []Observation

// Clone returns an independent copy of the table
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// IsEmpty reports whether the table holds no observations
func (t Table) IsEmpty() bool {
	return len(t) == 0
}

// SortByCountryYear sorts in place by (country name, year)
func (t Table) SortByCountryYear() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Country != t[j].Country {
			return t[i].Country < t[j].Country
		}
		return t[i].Year < t[j].Year
	})
}

// Countries returns the distinct country names in table order after a
// (country, year) sort
func (t Table) Countries() []string {
	seen := make(map[string]bool)
	var names []string
	for _, obs := range t {
		if !seen[obs.Country] {
			seen[obs.Country] = true
			names = append(names, obs.Country)
		}
	}
	sort.Strings(names)
	return names
}

// ForCountry returns the observations for one country name sorted by year
func (t Table) ForCountry(name string) Table {
	var out Table
	for _, obs := range t {
		if obs.Country == name {
			out = append(out, obs)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// YearRange returns the min and max years present; ok is false for an
// empty table
func (t Table) YearRange() (minYear, maxYear int, ok bool) {
	if len(t) == 0 {
		return 0, 0, false
	}
	minYear, maxYear = t[0].Year, t[0].Year
	for _, obs := range t[1:] {
		if obs.Year < minYear {
			minYear = obs.Year
		}
		if obs.Year > maxYear {
			maxYear = obs.Year
		}
	}
	return minYear, maxYear, true
}
