package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"go-econ-trends/internal/analytics"
	"go-econ-trends/internal/cache"
	"go-econ-trends/internal/config"
	"go-econ-trends/internal/dataset"
	"go-econ-trends/internal/forecast"
	"go-econ-trends/internal/model"
	"go-econ-trends/internal/worldbank"
	"go-econ-trends/pkg/utils"
)

// One-shot fetch-and-summarize tool. Uses the same cache as the API
// server, so repeated runs within the freshness window stay offline.
func main() {
	indicator := flag.String("indicator", "gdp", "indicator name or World Bank code")
	countries := flag.String("countries", "USA,CHN,JPN", "comma-separated ISO country codes")
	startYear := flag.Int("start", 2000, "start year")
	endYear := flag.Int("end", 2023, "end year")
	predict := flag.Bool("predict", false, "print next-year trend predictions")
	flag.Parse()

	if *startYear > *endYear {
		log.Fatalf("start year %d exceeds end year %d", *startYear, *endYear)
	}

	cfg := config.Load()
	queryCache, err := cache.New(cfg.CacheDir)
	if err != nil {
		log.Fatalf("failed to open query cache: %v", err)
	}

	client := worldbank.NewClient(cfg.WorldBankBaseURL, cfg.FetchDelay)
	svc := dataset.New(client, queryCache, nil, cfg.CacheMaxAge)

	q := model.Query{
		Indicator: *indicator,
		Countries: strings.Split(*countries, ","),
		StartYear: *startYear,
		EndYear:   *endYear,
	}

	table, err := svc.Fetch(context.Background(), q)
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}
	if table.IsEmpty() {
		fmt.Println("No data available for the selected parameters.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Printf("\n📊 %s statistics\n\n", *indicator)
	fmt.Fprintln(w, "COUNTRY\tMEAN\tMEDIAN\tMIN\tMAX\tSTD DEV\tLATEST")
	for _, rec := range analytics.Statistics(table) {
		stdDev := "N/A"
		if rec.StdDev != nil {
			stdDev = utils.FormatLargeNumber(*rec.StdDev, 2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Country,
			utils.FormatLargeNumber(rec.Mean, 2),
			utils.FormatLargeNumber(rec.Median, 2),
			utils.FormatLargeNumber(rec.Min, 2),
			utils.FormatLargeNumber(rec.Max, 2),
			stdDev,
			utils.FormatLargeNumber(rec.Latest, 2),
		)
	}
	w.Flush()

	fmt.Printf("\n📈 %s compound annual growth\n\n", *indicator)
	fmt.Fprintln(w, "COUNTRY\tPERIOD\tSTART\tEND\tCAGR")
	for _, rec := range analytics.CAGR(table, 0, 0) {
		fmt.Fprintf(w, "%s\t%d–%d\t%s\t%s\t%s\n",
			rec.Country, rec.StartYear, rec.EndYear,
			utils.FormatLargeNumber(rec.StartValue, 2),
			utils.FormatLargeNumber(rec.EndValue, 2),
			utils.FormatPercent(rec.CAGRPercent, 2),
		)
	}
	w.Flush()

	if *predict {
		predictor := forecast.Train(table)
		fmt.Printf("\n🔮 %s next-year predictions\n\n", *indicator)
		for _, obs := range predictor.PredictNextYear() {
			fmt.Printf("%s (%d): %s\n", obs.Country, obs.Year, utils.FormatLargeNumber(obs.Value, 2))
		}
		fmt.Println()
		for _, country := range predictor.Countries() {
			fmt.Println(predictor.Summary(country))
		}
	}
}
