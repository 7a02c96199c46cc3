package main

import (
	"log"
	"net/http"

	"go-econ-trends/internal/api"
	"go-econ-trends/internal/api/handler"
	"go-econ-trends/internal/cache"
	"go-econ-trends/internal/config"
	"go-econ-trends/internal/dataset"
	"go-econ-trends/internal/store"
	"go-econ-trends/internal/worldbank"

	_ "go-econ-trends/docs" // swagger spec registration
)

// @title Econ Trends API
// @version 1.0
// @description Macroeconomic indicator ingestion, caching, and analytics over World Bank data
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	history, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open history store: %v", err)
	}
	defer history.Close()

	queryCache, err := cache.New(cfg.CacheDir)
	if err != nil {
		log.Fatalf("failed to open query cache: %v", err)
	}

	client := worldbank.NewClient(cfg.WorldBankBaseURL, cfg.FetchDelay)
	svc := dataset.New(client, queryCache, history, cfg.CacheMaxAge)

	r := api.NewRouter(handler.New(svc, client, history))

	log.Printf("🚀 Econ Trends API listening on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
