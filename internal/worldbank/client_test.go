package worldbank

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-econ-trends/internal/model"
)

func envelope(meta string, records string) string {
	return fmt.Sprintf("[%s,%s]", meta, records)
}

func record(country, iso3, date string, value string) string {
	return fmt.Sprintf(`{"country":{"value":%q},"countryiso3code":%q,"date":%q,"value":%s}`,
		country, iso3, date, value)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0)
}

func TestFetchIndicatorParsesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2018:2020", r.URL.Query().Get("date"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		fmt.Fprint(w, envelope(`{"page":1,"pages":1}`, "["+
			record("Japan", "JPN", "2020", "5.5")+","+
			record("Japan", "JPN", "2019", "null")+","+ // null values are dropped
			record("Japan", "JPN", "2018", "4.5")+
			"]"))
	})

	table, results := client.FetchIndicator(context.Background(), model.Query{
		Indicator: "NY.GDP.MKTP.CD",
		Countries: []string{"JPN"},
		StartYear: 2018,
		EndYear:   2020,
	})

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.Len(t, table, 2)
	assert.Equal(t, model.Observation{Country: "Japan", CountryCode: "JPN", Year: 2018, Value: 4.5}, table[0])
	assert.Equal(t, 2020, table[1].Year)
}

func TestFetchIndicatorPartialFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/country/FRA/") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, envelope(`{"page":1,"pages":1}`,
			"["+record("Japan", "JPN", "2020", "5.5")+"]"))
	})

	table, results := client.FetchIndicator(context.Background(), model.Query{
		Indicator: "NY.GDP.MKTP.CD",
		Countries: []string{"JPN", "FRA"},
		StartYear: 2020,
		EndYear:   2020,
	})

	// one country failing must not abort the other
	require.Len(t, table, 1)
	assert.Equal(t, "JPN", table[0].CountryCode)

	require.Len(t, results, 2)
	byCode := map[string]FetchResult{}
	for _, res := range results {
		byCode[res.CountryCode] = res
	}
	assert.Error(t, byCode["FRA"].Err)
	assert.NoError(t, byCode["JPN"].Err)
}

func TestFetchIndicatorAllFailedYieldsEmptyTable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	table, results := client.FetchIndicator(context.Background(), model.Query{
		Indicator: "gdp",
		Countries: []string{"JPN", "FRA"},
		StartYear: 2020,
		EndYear:   2020,
	})

	require.NotNil(t, table, "empty table must be an explicit container, never nil")
	assert.Empty(t, table)
	for _, res := range results {
		assert.Error(t, res.Err)
	}
}

func TestFetchIndicatorNullRecordsTreatedAsNoData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelope(`{"page":1,"pages":0}`, "null"))
	})

	table, results := client.FetchIndicator(context.Background(), model.Query{
		Indicator: "gdp",
		Countries: []string{"JPN"},
		StartYear: 2020,
		EndYear:   2020,
	})

	assert.Empty(t, table)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err, "a null records array is no data, not an error")
}

func TestFetchIndicatorMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":"unexpected shape"}`)
	})

	table, results := client.FetchIndicator(context.Background(), model.Query{
		Indicator: "gdp",
		Countries: []string{"JPN"},
		StartYear: 2020,
		EndYear:   2020,
	})

	assert.Empty(t, table)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestFetchIndicatorDrainsAllPages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, envelope(`{"page":1,"pages":2}`,
				"["+record("Japan", "JPN", "2020", "1")+"]"))
		case "2":
			fmt.Fprint(w, envelope(`{"page":2,"pages":2}`,
				"["+record("Japan", "JPN", "2019", "2")+"]"))
		default:
			http.Error(w, "bad page", http.StatusBadRequest)
		}
	})

	table, _ := client.FetchIndicator(context.Background(), model.Query{
		Indicator: "gdp",
		Countries: []string{"JPN"},
		StartYear: 2019,
		EndYear:   2020,
	})

	require.Len(t, table, 2)
	assert.Equal(t, 2019, table[0].Year)
	assert.Equal(t, 2020, table[1].Year)
}

func TestFetchIndicatorDeduplicatesCountries(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, envelope(`{"page":1,"pages":1}`,
			"["+record("Japan", "JPN", "2020", "1")+"]"))
	})

	client.FetchIndicator(context.Background(), model.Query{
		Indicator: "gdp",
		Countries: []string{"JPN", "JPN", "JPN"},
		StartYear: 2020,
		EndYear:   2020,
	})
	assert.Equal(t, 1, calls)
}

func TestListCountriesFallsBackOnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	countries := client.ListCountries(context.Background())
	assert.Equal(t, PopularCountries, countries)
}

func TestListCountriesFiltersAggregates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelope(`{"page":1,"pages":1}`, `[
			{"iso2Code":"JP","name":"Japan","capitalCity":"Tokyo"},
			{"iso2Code":"ZQ","name":"Middle East & North Africa","capitalCity":""}
		]`))
	})

	countries := client.ListCountries(context.Background())
	assert.Equal(t, map[string]string{"JP": "Japan"}, countries)
}
