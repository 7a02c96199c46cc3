package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-econ-trends/internal/worldbank"
)

// ListIndicators returns the named indicator registry
// @Summary List indicators
// @Description Friendly indicator names and their World Bank codes
// @Tags registry
// @Produce json
// @Success 200 {object} map[string]string "Indicator registry"
// @Router /indicators [get]
func (h *Handler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, worldbank.Indicators)
}

// ListCountries returns the country registry
// @Summary List countries
// @Description Live country registry from the provider; degrades to a built-in popular set when unreachable
// @Tags registry
// @Produce json
// @Success 200 {object} map[string]string "Country code to name"
// @Router /countries [get]
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.client.ListCountries(r.Context()))
}

// ListQueries returns recent request history
// @Summary List queries
// @Description Recent data requests with cache-hit flags and record counts
// @Tags history
// @Produce json
// @Param limit query int false "Maximum rows (default 100)"
// @Success 200 {object} map[string]interface{} "Query history"
// @Failure 500 {object} map[string]interface{} "History store unavailable"
// @Router /queries [get]
func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "request history is disabled", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	queries, err := h.history.ListQueries(limit)
	if err != nil {
		http.Error(w, "failed to fetch query history", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"queries": queries,
		"count":   len(queries),
	})
}

// GetQueryErrors returns the per-country failures recorded for one query
// @Summary Get query errors
// @Description Countries that contributed no data to a request, with failure reasons
// @Tags history
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} map[string]interface{} "Recorded failures"
// @Failure 404 {object} map[string]interface{} "Query not found"
// @Router /queries/{id}/errors [get]
func (h *Handler) GetQueryErrors(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "request history is disabled", http.StatusServiceUnavailable)
		return
	}

	queryID := chi.URLParam(r, "id")
	if _, err := h.history.GetQuery(queryID); err != nil {
		http.Error(w, "query not found", http.StatusNotFound)
		return
	}

	failures, err := h.history.GetQueryErrors(queryID)
	if err != nil {
		http.Error(w, "failed to fetch query errors", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query_id": queryID,
		"errors":   failures,
		"count":    len(failures),
	})
}
