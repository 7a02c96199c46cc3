package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"go-econ-trends/internal/api/handler"
)

// NewRouter assembles the HTTP API around a handler set
func NewRouter(h *handler.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/indicators", h.ListIndicators)
		r.Get("/countries", h.ListCountries)

		r.Route("/indicators/{code}", func(r chi.Router) {
			r.Get("/data", h.GetData)
			r.Get("/latest", h.GetLatest)
			r.Get("/statistics", h.GetStatistics)
			r.Get("/growth", h.GetGrowth)
			r.Get("/cagr", h.GetCAGR)
			r.Get("/compare", h.Compare)
			r.Get("/forecast", h.Forecast)
			r.Get("/chart", h.Chart)
			r.Get("/export.csv", h.ExportCSV)
		})

		r.Get("/queries", h.ListQueries)
		r.Get("/queries/{id}/errors", h.GetQueryErrors)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
