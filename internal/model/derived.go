package model

// StatisticsRecord summarizes one country's series over the queried range.
// StdDev is nil when fewer than two observations exist (sample standard
// deviation is undefined for a single point).
type StatisticsRecord struct {
	Country string   `json:"country"`
	Count   int      `json:"count"`
	Mean    float64  `json:"mean"`
	Median  float64  `json:"median"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	StdDev  *float64 `json:"std_dev"`
	Latest  float64  `json:"latest"`
}

// GrowthRecord is an observation plus its year-over-year growth rate.
// A country's first year in range never produces a growth record.
type GrowthRecord struct {
	Country           string  `json:"country"`
	CountryCode       string  `json:"country_code"`
	Year              int     `json:"year"`
	Value             float64 `json:"value"`
	GrowthRatePercent float64 `json:"growth_rate_percent"`
}

// CAGRRecord is the compound annual growth rate between two endpoint
// observations of one country
type CAGRRecord struct {
	Country     string  `json:"country"`
	StartYear   int     `json:"start_year"`
	EndYear     int     `json:"end_year"`
	StartValue  float64 `json:"start_value"`
	EndValue    float64 `json:"end_value"`
	CAGRPercent float64 `json:"cagr_percent"`
}

// Comparison holds pairwise metrics for two countries. Correlation is nil
// when the two series have different lengths (never approximated).
type Comparison struct {
	Country1    string   `json:"country1"`
	Country2    string   `json:"country2"`
	MeanDiff    float64  `json:"mean_diff"`
	MedianDiff  float64  `json:"median_diff"`
	LatestDiff  float64  `json:"latest_diff"`
	Correlation *float64 `json:"correlation"`
}
