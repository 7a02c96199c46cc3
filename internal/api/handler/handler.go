package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go-econ-trends/internal/model"
	"go-econ-trends/internal/store"
)

var (
	errMissingCountries = errors.New("countries query parameter is required")
	errBadYear          = errors.New("start and end must be integer years")
	errYearOrder        = errors.New("start year must not exceed end year")
)

// Default year range applied when the caller omits start/end
const (
	defaultStartYear = 2000
	defaultEndYear   = 2023
)

// DataService is the fetch-or-cache surface the handlers call
type DataService interface {
	Fetch(ctx context.Context, q model.Query) (model.Table, error)
}

// CountryLister serves the country registry
type CountryLister interface {
	ListCountries(ctx context.Context) map[string]string
}

// Handler bundles the dependencies of all API endpoints
type Handler struct {
	svc     DataService
	client  CountryLister
	history *store.Store
}

// New builds a handler set. history may be nil when request recording is
// disabled.
func New(svc DataService, client CountryLister, history *store.Store) *Handler {
	return &Handler{svc: svc, client: client, history: history}
}

// parseQuery extracts the (indicator, countries, years) tuple shared by
// every data endpoint
func parseQuery(r *http.Request, indicator string) (model.Query, error) {
	q := model.Query{
		Indicator: indicator,
		StartYear: defaultStartYear,
		EndYear:   defaultEndYear,
	}

	countries := r.URL.Query().Get("countries")
	if countries == "" {
		return q, errMissingCountries
	}
	q.Countries = splitCSV(countries)

	if s := r.URL.Query().Get("start"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return q, errBadYear
		}
		q.StartYear = year
	}
	if s := r.URL.Query().Get("end"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return q, errBadYear
		}
		q.EndYear = year
	}
	if q.StartYear > q.EndYear {
		return q, errYearOrder
	}
	return q, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
