package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-econ-trends/internal/model"
)

func obs(country, code string, year int, value float64) model.Observation {
	return model.Observation{Country: country, CountryCode: code, Year: year, Value: value}
}

func TestStatisticsSingleCountry(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2020, 10),
		obs("Japan", "JPN", 2021, 20),
		obs("Japan", "JPN", 2022, 30),
	}

	stats := Statistics(table)
	require.Len(t, stats, 1)
	assert.Equal(t, "Japan", stats[0].Country)
	assert.Equal(t, 3, stats[0].Count)
	assert.InDelta(t, 20.0, stats[0].Mean, 1e-9)
	assert.InDelta(t, 20.0, stats[0].Median, 1e-9)
	assert.InDelta(t, 10.0, stats[0].Min, 1e-9)
	assert.InDelta(t, 30.0, stats[0].Max, 1e-9)
	assert.InDelta(t, 30.0, stats[0].Latest, 1e-9)
	require.NotNil(t, stats[0].StdDev)
	assert.InDelta(t, 10.0, *stats[0].StdDev, 1e-9)
}

func TestStatisticsStdDevUndefinedForSinglePoint(t *testing.T) {
	stats := Statistics(model.Table{obs("Japan", "JPN", 2020, 42)})
	require.Len(t, stats, 1)
	assert.Nil(t, stats[0].StdDev)
}

func TestStatisticsLatestUsesMaxYearNotInsertionOrder(t *testing.T) {
	// 2022 inserted before 2020: latest must still be the 2022 value
	table := model.Table{
		obs("Japan", "JPN", 2022, 99),
		obs("Japan", "JPN", 2020, 11),
	}
	stats := Statistics(table)
	require.Len(t, stats, 1)
	assert.InDelta(t, 99.0, stats[0].Latest, 1e-9)
}

func TestGrowthRates(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2018, 100),
		obs("Japan", "JPN", 2019, 110),
		obs("Japan", "JPN", 2020, 99),
	}

	growth := GrowthRates(table)
	require.Len(t, growth, 2)
	assert.Equal(t, 2019, growth[0].Year)
	assert.InDelta(t, 10.0, growth[0].GrowthRatePercent, 1e-9)
	assert.Equal(t, 2020, growth[1].Year)
	assert.InDelta(t, -10.0, growth[1].GrowthRatePercent, 1e-9)
}

func TestGrowthRatesZeroDenominatorDropped(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2018, 0),
		obs("Japan", "JPN", 2019, 50),
		obs("Japan", "JPN", 2020, 100),
	}

	growth := GrowthRates(table)
	require.Len(t, growth, 1) // 2019 undefined, 2020 = +100%
	assert.Equal(t, 2020, growth[0].Year)
	assert.InDelta(t, 100.0, growth[0].GrowthRatePercent, 1e-9)
}

func TestCAGR(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2000, 100),
		obs("Japan", "JPN", 2010, 200),
	}

	records := CAGR(table, 0, 0)
	require.Len(t, records, 1)
	assert.Equal(t, 2000, records[0].StartYear)
	assert.Equal(t, 2010, records[0].EndYear)
	assert.InDelta(t, 7.177, records[0].CAGRPercent, 0.001)
}

func TestCAGRNonPositiveBaseExcluded(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2000, -5),
		obs("Japan", "JPN", 2010, 200),
	}
	assert.Empty(t, CAGR(table, 0, 0))
}

func TestCAGRMissingEndpointExcluded(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2005, 100),
		obs("Japan", "JPN", 2010, 200),
	}
	// explicit start year with no observation
	assert.Empty(t, CAGR(table, 2000, 0))
}

func TestCAGRSingleYearExcluded(t *testing.T) {
	assert.Empty(t, CAGR(model.Table{obs("Japan", "JPN", 2010, 100)}, 0, 0))
}

func TestCAGRExplicitEndpoints(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2000, 50),
		obs("Japan", "JPN", 2005, 100),
		obs("Japan", "JPN", 2015, 400),
	}

	records := CAGR(table, 2005, 2015)
	require.Len(t, records, 1)
	assert.InDelta(t, 100.0, records[0].StartValue, 1e-9)
	assert.InDelta(t, 400.0, records[0].EndValue, 1e-9)
	// 4x over 10 years ≈ 14.87%/yr
	assert.InDelta(t, 14.87, records[0].CAGRPercent, 0.01)
}

func TestLatestValuesPerCountryMaxYear(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2020, 10),
		obs("Japan", "JPN", 2022, 30),
		obs("Brazil", "BRA", 2019, 50),
		obs("Brazil", "BRA", 2021, 40),
	}

	latest := LatestValues(table)
	require.Len(t, latest, 2)
	// Brazil's own max year is 2021, not the global max 2022
	assert.Equal(t, "Brazil", latest[0].Country)
	assert.Equal(t, 2021, latest[0].Year)
	assert.Equal(t, "Japan", latest[1].Country)
	assert.Equal(t, 2022, latest[1].Year)
	// sorted by value descending
	assert.Greater(t, latest[0].Value, latest[1].Value)
}

func TestCompare(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2020, 10),
		obs("Japan", "JPN", 2021, 20),
		obs("Brazil", "BRA", 2020, 5),
		obs("Brazil", "BRA", 2021, 10),
	}

	cmp, ok := Compare(table, "Japan", "Brazil")
	require.True(t, ok)
	assert.InDelta(t, 7.5, cmp.MeanDiff, 1e-9)
	assert.InDelta(t, 7.5, cmp.MedianDiff, 1e-9)
	assert.InDelta(t, 10.0, cmp.LatestDiff, 1e-9)
	require.NotNil(t, cmp.Correlation)
	assert.InDelta(t, 1.0, *cmp.Correlation, 1e-9)
}

func TestCompareUnequalLengthsOmitCorrelation(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2020, 10),
		obs("Japan", "JPN", 2021, 20),
		obs("Brazil", "BRA", 2021, 5),
	}

	cmp, ok := Compare(table, "Japan", "Brazil")
	require.True(t, ok)
	assert.Nil(t, cmp.Correlation)
}

func TestCompareMissingCountry(t *testing.T) {
	table := model.Table{obs("Japan", "JPN", 2020, 10)}
	_, ok := Compare(table, "Japan", "Atlantis")
	assert.False(t, ok)
}

func TestAnalyticsDoNotMutateInput(t *testing.T) {
	table := model.Table{
		obs("Japan", "JPN", 2021, 20),
		obs("Japan", "JPN", 2020, 10),
	}
	original := table.Clone()

	Statistics(table)
	GrowthRates(table)
	CAGR(table, 0, 0)
	LatestValues(table)

	assert.Equal(t, original, table)
}
