// Package forecast fits a per-country trend model over an observation
// table and projects each series one year past its latest observation.
package forecast

import (
	"fmt"
	"sort"

	"go-econ-trends/internal/model"
	"go-econ-trends/pkg/utils"
)

// Metrics describes one country's fitted model
type Metrics struct {
	Country      string  `json:"country"`
	Slope        float64 `json:"slope"`
	Intercept    float64 `json:"intercept"`
	R2           float64 `json:"r2"`
	Observations int     `json:"observations"`
	FirstYear    int     `json:"first_year"`
	LastYear     int     `json:"last_year"`
}

// Predictor holds least-squares trend fits, one per country with at least
// two observations
type Predictor struct {
	models map[string]Metrics
	codes  map[string]string
}

// Train fits a model for each country in the table. Countries with fewer
// than two observations are skipped.
func Train(t model.Table) *Predictor {
	p := &Predictor{
		models: make(map[string]Metrics),
		codes:  make(map[string]string),
	}

	for _, country := range t.Countries() {
		series := t.ForCountry(country)
		if len(series) < 2 {
			continue
		}
		p.models[country] = fit(country, series)
		p.codes[country] = series[0].CountryCode
	}
	return p
}

// Trained returns the metrics of every fitted country model
func (p *Predictor) Trained() map[string]Metrics {
	out := make(map[string]Metrics, len(p.models))
	for country, m := range p.models {
		out[country] = m
	}
	return out
}

// PredictNextYear projects each fitted country one year beyond its latest
// observed year. Output is sorted by (country, year).
func (p *Predictor) PredictNextYear() model.Table {
	out := model.Table{}
	for country, m := range p.models {
		year := m.LastYear + 1
		out = append(out, model.Observation{
			Country:     country,
			CountryCode: p.codes[country],
			Year:        year,
			Value:       m.Intercept + m.Slope*float64(year),
		})
	}
	out.SortByCountryYear()
	return out
}

// Summary renders a human-readable description of one country's model.
// Unknown countries get an explanatory line instead of an error.
func (p *Predictor) Summary(country string) string {
	m, ok := p.models[country]
	if !ok {
		return fmt.Sprintf("No trend model for %s: fewer than two observations.", country)
	}
	direction := "grows"
	if m.Slope < 0 {
		direction = "shrinks"
	}
	return fmt.Sprintf("Linear trend for %s over %d–%d (%d observations): value %s by %s per year, fit R²=%.3f.",
		country, m.FirstYear, m.LastYear, m.Observations, direction,
		utils.FormatLargeNumber(m.Slope, 2), m.R2)
}

// Countries lists the fitted countries in sorted order
func (p *Predictor) Countries() []string {
	out := make([]string, 0, len(p.models))
	for country := range p.models {
		out = append(out, country)
	}
	sort.Strings(out)
	return out
}

// fit runs ordinary least squares of value on year. series must be
// year-sorted with len >= 2.
func fit(country string, series model.Table) Metrics {
	n := float64(len(series))
	var sumX, sumY float64
	for _, obs := range series {
		sumX += float64(obs.Year)
		sumY += obs.Value
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for _, obs := range series {
		dx := float64(obs.Year) - meanX
		sxx += dx * dx
		sxy += dx * (obs.Value - meanY)
	}

	slope := 0.0
	if sxx != 0 {
		slope = sxy / sxx
	}
	intercept := meanY - slope*meanX

	var ssRes, ssTot float64
	for _, obs := range series {
		pred := intercept + slope*float64(obs.Year)
		ssRes += (obs.Value - pred) * (obs.Value - pred)
		ssTot += (obs.Value - meanY) * (obs.Value - meanY)
	}
	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Metrics{
		Country:      country,
		Slope:        slope,
		Intercept:    intercept,
		R2:           r2,
		Observations: len(series),
		FirstYear:    series[0].Year,
		LastYear:     series[len(series)-1].Year,
	}
}
