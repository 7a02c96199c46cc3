package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"go-econ-trends/internal/chart"
	"go-econ-trends/internal/forecast"
)

// Forecast trains a trend model and predicts one year ahead per country
// @Summary Forecast next year
// @Description Fit a per-country trend model and project each series one year past its latest observation
// @Tags insights
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {object} map[string]interface{} "Predictions, model metrics, and per-country summaries"
// @Router /indicators/{code}/forecast [get]
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}

	predictor := forecast.Train(table)
	predictions := predictor.PredictNextYear()

	summaries := make(map[string]string)
	for _, country := range predictor.Countries() {
		summaries[country] = predictor.Summary(country)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"indicator":   q.Indicator,
		"predictions": predictions,
		"metrics":     predictor.Trained(),
		"summaries":   summaries,
	})
}

// Chart returns a renderable figure description for the fetched table
// @Summary Chart description
// @Description Build a line, latest-value bar, or growth chart config from the observation table
// @Tags insights
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param type query string false "Chart type: line (default), bar, growth"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {object} chart.Config "Figure description"
// @Failure 404 {object} map[string]interface{} "No chartable data"
// @Router /indicators/{code}/chart [get]
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}

	title := fmt.Sprintf("%s over time", q.Indicator)
	var config *chart.Config
	switch r.URL.Query().Get("type") {
	case "bar":
		config = chart.LatestBar(table, fmt.Sprintf("Latest %s by country", q.Indicator), q.Indicator)
	case "growth":
		config = chart.GrowthBar(table, fmt.Sprintf("%s growth rates", q.Indicator))
	default:
		config = chart.Line(table, title, q.Indicator)
	}

	if config == nil {
		http.Error(w, "no data to chart", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, config)
}

// ExportCSV streams the observation table as a CSV download
// @Summary Download CSV
// @Description Download the observation table as CSV, sorted by (country, year)
// @Tags data
// @Produce text/csv
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {file} file "CSV file"
// @Router /indicators/{code}/export.csv [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", q.Indicator+".csv"))

	writer := csv.NewWriter(w)
	writer.Write([]string{"Country", "Country Code", "Year", q.Indicator})
	for _, obs := range table {
		writer.Write([]string{
			obs.Country,
			obs.CountryCode,
			strconv.Itoa(obs.Year),
			strconv.FormatFloat(obs.Value, 'f', -1, 64),
		})
	}
	writer.Flush()
}
