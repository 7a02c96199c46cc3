// Package analytics derives summary tables from observation tables.
// Every function is pure: it sorts and reads its input, allocates its
// output, and keeps no state between calls. Undefined quantities (a lone
// year's standard deviation, a zero-base growth rate, a non-positive CAGR
// base) are excluded or nil rather than surfaced as faults.
package analytics

import (
	"math"
	"sort"

	"go-econ-trends/internal/model"
)

// LatestValues picks each country's maximum-year observation and returns
// them sorted by value descending
func LatestValues(t model.Table) model.Table {
	latest := make(map[string]model.Observation)
	for _, obs := range t {
		cur, ok := latest[obs.Country]
		if !ok || obs.Year > cur.Year {
			latest[obs.Country] = obs
		}
	}

	out := make(model.Table, 0, len(latest))
	for _, obs := range latest {
		out = append(out, obs)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// Statistics computes per-country summary statistics over the queried
// range. Latest is the value at the country's maximum year. StdDev is nil
// for a single-observation series.
func Statistics(t model.Table) []model.StatisticsRecord {
	out := make([]model.StatisticsRecord, 0)
	for _, country := range t.Countries() {
		series := t.ForCountry(country)
		if len(series) == 0 {
			continue
		}

		values := make([]float64, len(series))
		for i, obs := range series {
			values[i] = obs.Value
		}

		rec := model.StatisticsRecord{
			Country: country,
			Count:   len(values),
			Mean:    mean(values),
			Median:  median(values),
			Min:     minOf(values),
			Max:     maxOf(values),
			Latest:  series[len(series)-1].Value, // series is year-sorted
		}
		if sd, ok := sampleStdDev(values); ok {
			rec.StdDev = &sd
		}
		out = append(out, rec)
	}
	return out
}

// GrowthRates computes year-over-year growth per country. Each country's
// first year in range produces no record, and a zero prior value drops
// that year's record rather than dividing by zero.
func GrowthRates(t model.Table) []model.GrowthRecord {
	out := make([]model.GrowthRecord, 0)
	for _, country := range t.Countries() {
		series := t.ForCountry(country)
		for i := 1; i < len(series); i++ {
			prev := series[i-1].Value
			if prev == 0 {
				continue
			}
			cur := series[i]
			out = append(out, model.GrowthRecord{
				Country:           cur.Country,
				CountryCode:       cur.CountryCode,
				Year:              cur.Year,
				Value:             cur.Value,
				GrowthRatePercent: (cur.Value - prev) / prev * 100,
			})
		}
	}
	return out
}

// CAGR computes the compound annual growth rate per country. startYear and
// endYear select explicit endpoints; zero means "use the country's
// earliest/latest observed year". Countries missing an endpoint, spanning
// no years, or starting from a non-positive base are silently excluded.
func CAGR(t model.Table, startYear, endYear int) []model.CAGRRecord {
	out := make([]model.CAGRRecord, 0)
	for _, country := range t.Countries() {
		series := t.ForCountry(country)
		if len(series) == 0 {
			continue
		}

		start, ok := resolveEndpoint(series, startYear, 0)
		if !ok {
			continue
		}
		end, ok := resolveEndpoint(series, endYear, len(series)-1)
		if !ok {
			continue
		}

		years := end.Year - start.Year
		if years <= 0 || start.Value <= 0 {
			continue
		}

		cagr := (math.Pow(end.Value/start.Value, 1/float64(years)) - 1) * 100
		out = append(out, model.CAGRRecord{
			Country:     country,
			StartYear:   start.Year,
			EndYear:     end.Year,
			StartValue:  start.Value,
			EndValue:    end.Value,
			CAGRPercent: cagr,
		})
	}
	return out
}

// resolveEndpoint picks the observation at year, or the fallback index
// when year is zero. series must be year-sorted and non-empty.
func resolveEndpoint(series model.Table, year, fallbackIdx int) (model.Observation, bool) {
	if year == 0 {
		return series[fallbackIdx], true
	}
	for _, obs := range series {
		if obs.Year == year {
			return obs, true
		}
	}
	return model.Observation{}, false
}

// Compare computes pairwise metrics between two country series. ok is
// false when either country has no observations. Correlation is nil
// unless both series have the same length; values are then aligned by
// position after the year sort, never interpolated.
func Compare(t model.Table, country1, country2 string) (model.Comparison, bool) {
	s1 := t.ForCountry(country1)
	s2 := t.ForCountry(country2)
	if len(s1) == 0 || len(s2) == 0 {
		return model.Comparison{}, false
	}

	v1 := make([]float64, len(s1))
	for i, obs := range s1 {
		v1[i] = obs.Value
	}
	v2 := make([]float64, len(s2))
	for i, obs := range s2 {
		v2[i] = obs.Value
	}

	cmp := model.Comparison{
		Country1:   country1,
		Country2:   country2,
		MeanDiff:   mean(v1) - mean(v2),
		MedianDiff: median(v1) - median(v2),
		LatestDiff: v1[len(v1)-1] - v2[len(v2)-1],
	}
	if len(v1) == len(v2) {
		if r, ok := correlation(v1, v2); ok {
			cmp.Correlation = &r
		}
	}
	return cmp, true
}

// ------------------- Numeric helpers -------------------

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// sampleStdDev returns the sample standard deviation; ok is false when
// fewer than two values exist
func sampleStdDev(values []float64) (float64, bool) {
	n := len(values)
	if n < 2 {
		return 0, false
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1)), true
}

// correlation is the Pearson coefficient of two equal-length series; ok is
// false when either series has zero variance
func correlation(a, b []float64) (float64, bool) {
	ma, mb := mean(a), mean(b)
	var cov, va, vb float64
	for i := range a {
		da := a[i] - ma
		db := b[i] - mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return 0, false
	}
	return cov / math.Sqrt(va*vb), true
}
