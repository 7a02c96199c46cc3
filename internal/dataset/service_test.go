package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-econ-trends/internal/cache"
	"go-econ-trends/internal/model"
	"go-econ-trends/internal/worldbank"
)

// fakeFetcher counts provider calls and returns a canned table
type fakeFetcher struct {
	calls int
	table model.Table
}

func (f *fakeFetcher) FetchIndicator(ctx context.Context, q model.Query) (model.Table, []worldbank.FetchResult) {
	f.calls++
	return f.table.Clone(), []worldbank.FetchResult{{CountryCode: "JPN", Table: f.table}}
}

func newTestService(t *testing.T, fetcher *fakeFetcher) *Service {
	t.Helper()
	c, err := cache.New(t.TempDir())
	require.NoError(t, err)
	return New(fetcher, c, nil, time.Hour)
}

func TestFetchUsesCacheOnSecondCall(t *testing.T) {
	fetcher := &fakeFetcher{table: model.Table{
		{Country: "Japan", CountryCode: "JPN", Year: 2020, Value: 1},
	}}
	svc := newTestService(t, fetcher)

	q := model.Query{Indicator: "gdp", Countries: []string{"JPN"}, StartYear: 2020, EndYear: 2020}

	first, err := svc.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, fetcher.calls)

	second, err := svc.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls, "second call must be served from the cache")
}

func TestFetchCacheKeyIgnoresCountryOrder(t *testing.T) {
	fetcher := &fakeFetcher{table: model.Table{
		{Country: "Japan", CountryCode: "JPN", Year: 2020, Value: 1},
	}}
	svc := newTestService(t, fetcher)

	_, err := svc.Fetch(context.Background(), model.Query{
		Indicator: "gdp", Countries: []string{"JPN", "USA"}, StartYear: 2020, EndYear: 2020})
	require.NoError(t, err)

	_, err = svc.Fetch(context.Background(), model.Query{
		Indicator: "gdp", Countries: []string{"USA", "JPN"}, StartYear: 2020, EndYear: 2020})
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
}

func TestFetchResolvesFriendlyIndicatorNames(t *testing.T) {
	fetcher := &fakeFetcher{table: model.Table{
		{Country: "Japan", CountryCode: "JPN", Year: 2020, Value: 1},
	}}
	svc := newTestService(t, fetcher)

	// friendly name and raw code must share one cache entry
	_, err := svc.Fetch(context.Background(), model.Query{
		Indicator: "gdp", Countries: []string{"JPN"}, StartYear: 2020, EndYear: 2020})
	require.NoError(t, err)

	_, err = svc.Fetch(context.Background(), model.Query{
		Indicator: "NY.GDP.MKTP.CD", Countries: []string{"JPN"}, StartYear: 2020, EndYear: 2020})
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
}

func TestFetchEmptyResultIsCachedAndExplicit(t *testing.T) {
	fetcher := &fakeFetcher{table: model.Table{}}
	svc := newTestService(t, fetcher)

	q := model.Query{Indicator: "gdp", Countries: []string{"JPN"}, StartYear: 2020, EndYear: 2020}

	table, err := svc.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Empty(t, table)

	// a fresh empty entry is a hit, not an excuse to refetch
	_, err = svc.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestFetchCancelledContext(t *testing.T) {
	fetcher := &fakeFetcher{table: model.Table{}}
	svc := newTestService(t, fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := svc.Fetch(ctx, model.Query{
		Indicator: "gdp", Countries: []string{"JPN"}, StartYear: 2020, EndYear: 2020})
	assert.Error(t, err)
	assert.NotNil(t, table)
}
