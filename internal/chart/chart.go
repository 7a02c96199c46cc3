// Package chart turns observation tables into renderable figure
// descriptions. Nothing here draws anything; the output is a
// JSON-serializable config a frontend charting library consumes.
package chart

import (
	"strconv"

	"go-econ-trends/internal/analytics"
	"go-econ-trends/internal/model"
)

// Default color palette for chart series
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Point is one labeled value of a series
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is one country's line or bar group
type Series struct {
	Name  string  `json:"name"`
	Color string  `json:"color,omitempty"`
	Data  []Point `json:"data"`
}

// Config describes a renderable figure
type Config struct {
	ChartType  string   `json:"chart_type"` // "line", "bar"
	Title      string   `json:"title"`
	XAxis      string   `json:"x_axis"`
	YAxis      string   `json:"y_axis"`
	ShowLegend bool     `json:"show_legend"`
	Series     []Series `json:"series"`
}

// Line builds a per-country time-series line chart
func Line(t model.Table, title, yAxis string) *Config {
	if t.IsEmpty() {
		return nil
	}

	config := &Config{
		ChartType:  "line",
		Title:      title,
		XAxis:      "Year",
		YAxis:      yAxis,
		ShowLegend: true,
	}
	for i, country := range t.Countries() {
		series := Series{Name: country, Color: defaultColors[i%len(defaultColors)]}
		for _, obs := range t.ForCountry(country) {
			series.Data = append(series.Data, Point{Label: strconv.Itoa(obs.Year), Value: obs.Value})
		}
		config.Series = append(config.Series, series)
	}
	return config
}

// LatestBar builds a bar chart of each country's most recent value,
// ordered largest first
func LatestBar(t model.Table, title, yAxis string) *Config {
	latest := analytics.LatestValues(t)
	if latest.IsEmpty() {
		return nil
	}

	series := Series{Name: yAxis, Color: defaultColors[0]}
	for _, obs := range latest {
		series.Data = append(series.Data, Point{Label: obs.Country, Value: obs.Value})
	}
	return &Config{
		ChartType: "bar",
		Title:     title,
		XAxis:     "Country",
		YAxis:     yAxis,
		Series:    []Series{series},
	}
}

// GrowthBar builds a per-country year-over-year growth chart
func GrowthBar(t model.Table, title string) *Config {
	records := analytics.GrowthRates(t)
	if len(records) == 0 {
		return nil
	}

	byCountry := make(map[string]*Series)
	var order []string
	for _, rec := range records {
		s, ok := byCountry[rec.Country]
		if !ok {
			s = &Series{Name: rec.Country, Color: defaultColors[len(order)%len(defaultColors)]}
			byCountry[rec.Country] = s
			order = append(order, rec.Country)
		}
		s.Data = append(s.Data, Point{Label: strconv.Itoa(rec.Year), Value: rec.GrowthRatePercent})
	}

	config := &Config{
		ChartType:  "bar",
		Title:      title,
		XAxis:      "Year",
		YAxis:      "Growth Rate (%)",
		ShowLegend: true,
	}
	for _, country := range order {
		config.Series = append(config.Series, *byCountry[country])
	}
	return config
}
