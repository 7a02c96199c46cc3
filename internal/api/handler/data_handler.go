package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-econ-trends/internal/analytics"
	"go-econ-trends/internal/model"
)

// GetData returns the raw observation table for an indicator
// @Summary Fetch indicator data
// @Description Fetch observations for an indicator across countries and years, served from the cache when fresh
// @Tags data
// @Produce json
// @Param code path string true "Indicator name or World Bank code (gdp, inflation, unemployment, NY.GDP.MKTP.CD, ...)"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year (default 2000)"
// @Param end query int false "End year (default 2023)"
// @Success 200 {object} map[string]interface{} "Observation table"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /indicators/{code}/data [get]
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"indicator": q.Indicator,
		"count":     len(table),
		"data":      table,
	})
}

// GetLatest returns each country's most recent observation
// @Summary Latest values
// @Description Each country's maximum-year observation, sorted by value descending
// @Tags analytics
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {object} map[string]interface{} "Latest values"
// @Router /indicators/{code}/latest [get]
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}
	latest := analytics.LatestValues(table)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"indicator": q.Indicator,
		"count":     len(latest),
		"data":      latest,
	})
}

// GetStatistics returns per-country summary statistics
// @Summary Cross-sectional statistics
// @Description Mean, median, min, max, sample standard deviation, and latest value per country
// @Tags analytics
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {object} map[string]interface{} "Statistics by country"
// @Router /indicators/{code}/statistics [get]
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}
	stats := analytics.Statistics(table)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"indicator": q.Indicator,
		"count":     len(stats),
		"data":      stats,
	})
}

// GetGrowth returns year-over-year growth rates
// @Summary Year-over-year growth
// @Description Growth rate per country and year; each country's first year in range is omitted
// @Tags analytics
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {object} map[string]interface{} "Growth records"
// @Router /indicators/{code}/growth [get]
func (h *Handler) GetGrowth(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}
	growth := analytics.GrowthRates(table)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"indicator": q.Indicator,
		"count":     len(growth),
		"data":      growth,
	})
}

// GetCAGR returns compound annual growth rates
// @Summary Compound annual growth rate
// @Description CAGR per country between two endpoints; countries without a well-defined rate are omitted
// @Tags analytics
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Param cagr_start query int false "Explicit CAGR start year (default: each country's earliest)"
// @Param cagr_end query int false "Explicit CAGR end year (default: each country's latest)"
// @Success 200 {object} map[string]interface{} "CAGR records"
// @Router /indicators/{code}/cagr [get]
func (h *Handler) GetCAGR(w http.ResponseWriter, r *http.Request) {
	table, q, ok := h.fetch(w, r)
	if !ok {
		return
	}

	startYear, _ := strconv.Atoi(r.URL.Query().Get("cagr_start"))
	endYear, _ := strconv.Atoi(r.URL.Query().Get("cagr_end"))

	records := analytics.CAGR(table, startYear, endYear)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"indicator": q.Indicator,
		"count":     len(records),
		"data":      records,
	})
}

// Compare returns pairwise metrics for two countries
// @Summary Compare two countries
// @Description Differences of mean, median, and latest value, plus correlation when series lengths match
// @Tags analytics
// @Produce json
// @Param code path string true "Indicator name or code"
// @Param countries query string true "Comma-separated ISO country codes"
// @Param first query string true "First country name"
// @Param second query string true "Second country name"
// @Param start query int false "Start year"
// @Param end query int false "End year"
// @Success 200 {object} model.Comparison "Comparison metrics"
// @Failure 404 {object} map[string]interface{} "One of the countries has no data"
// @Router /indicators/{code}/compare [get]
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	table, _, ok := h.fetch(w, r)
	if !ok {
		return
	}

	first := r.URL.Query().Get("first")
	second := r.URL.Query().Get("second")
	if first == "" || second == "" {
		http.Error(w, "first and second country names are required", http.StatusBadRequest)
		return
	}

	cmp, ok := analytics.Compare(table, first, second)
	if !ok {
		http.Error(w, "no data for one or both countries", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, cmp)
}

// fetch runs the shared parse-and-fetch prologue; on failure it writes the
// HTTP error itself and returns ok=false
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) (model.Table, model.Query, bool) {
	q, err := parseQuery(r, chi.URLParam(r, "code"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, q, false
	}

	table, err := h.svc.Fetch(r.Context(), q)
	if err != nil {
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return nil, q, false
	}
	return table, q, true
}
