package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-dashboard/internal/classify"
	"retail-dashboard/internal/models"
)

func tx(invoice, country string, qty int, price float64, month time.Month) models.Transaction {
	return models.Transaction{
		InvoiceNo:   invoice,
		StockCode:   "S-" + invoice,
		Description: "TEST PRODUCT",
		Quantity:    qty,
		UnitPrice:   price,
		InvoiceDate: time.Date(2011, month, 15, 10, 0, 0, 0, time.UTC),
		Country:     country,
	}
}

func TestDemandByCountry(t *testing.T) {
	rows := []models.Transaction{
		tx("536365", "United Kingdom", 6, 2.55, time.January),
		tx("536365", "United Kingdom", 8, 3.39, time.January), // same invoice
		tx("536366", "United Kingdom", 2, 1.85, time.January),
		tx("536370", "France", 24, 0.85, time.February),
		tx("C536379", "France", -1, 27.50, time.February), // cancelled, excluded
	}

	demand := DemandByCountry(rows)
	require.Len(t, demand, 2)

	// Ordered by country then month.
	assert.Equal(t, "France", demand[0].Country)
	assert.Equal(t, 2, demand[0].Month)
	assert.Equal(t, "Feb", demand[0].MonthName)
	assert.Equal(t, 1, demand[0].Frequency)
	assert.Equal(t, int64(24), demand[0].TotalQuantity)

	assert.Equal(t, "United Kingdom", demand[1].Country)
	assert.Equal(t, 2, demand[1].Frequency, "distinct invoices, not line items")
	assert.Equal(t, int64(16), demand[1].TotalQuantity)
}

func TestDemandByRegion(t *testing.T) {
	rows := []models.Transaction{
		tx("1", "Japan", 5, 1.0, time.March),
		tx("2", "Singapore", 3, 1.0, time.March),
		tx("3", "Germany", 7, 1.0, time.March),
		tx("4", "USA", 2, 1.0, time.March),
	}

	demand := DemandByRegion(rows)
	require.Len(t, demand, 3)

	assert.Equal(t, classify.GroupAsian, demand[0].Region)
	assert.Equal(t, int64(8), demand[0].TotalQuantity)
	assert.Equal(t, 2, demand[0].Frequency)
	assert.Equal(t, classify.GroupEU, demand[1].Region)
	assert.Equal(t, classify.GroupOtherRegions, demand[2].Region)
}

func TestTopCountriesByQuantity(t *testing.T) {
	rows := []models.Transaction{
		tx("1", "France", 10, 1.0, time.January),
		tx("2", "Germany", 30, 1.0, time.January),
		tx("3", "Spain", 10, 1.0, time.January),
		tx("C4", "Italy", -50, 1.0, time.January), // cancelled rows never rank
	}

	top := TopCountriesByQuantity(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Germany", top[0].Country)
	// Tie between France and Spain resolved lexically.
	assert.Equal(t, "France", top[1].Country)
}

// Conservation law: summing group values reproduces the filtered input sum.
func TestValueByCountryConservation(t *testing.T) {
	rows := []models.Transaction{
		tx("1", "United Kingdom", 2, 5.0, time.January),
		tx("2", "United Kingdom", 3, 2.0, time.February),
		tx("3", "France", 4, 1.25, time.March),
		tx("C5", "France", -2, 3.0, time.March), // negative value still counts here
		{InvoiceNo: "6", Quantity: 1, UnitPrice: 9.99}, // no country: filtered out
	}

	var want float64
	for _, r := range rows {
		if r.Country != "" {
			want += r.LineValue()
		}
	}

	values := ValueByCountry(rows)
	var got float64
	var txCount int64
	for _, v := range values {
		got += v.TotalValue
		txCount += v.Transactions
	}
	assert.InDelta(t, want, got, 1e-9)
	assert.Equal(t, int64(4), txCount)
	// Descending by value.
	assert.Equal(t, "United Kingdom", values[0].Country)
}

func TestRollupCountryValue(t *testing.T) {
	values := []models.CountryValue{
		{Country: "United Kingdom", TotalValue: 600, Transactions: 6, TotalQuantity: 60},
		{Country: "France", TotalValue: 200, Transactions: 2, TotalQuantity: 20},
		{Country: "Germany", TotalValue: 150, Transactions: 3, TotalQuantity: 15},
		{Country: "Spain", TotalValue: 50, Transactions: 1, TotalQuantity: 5},
	}

	rollup := RollupCountryValue(values, 2)
	require.Len(t, rollup.Top, 2)
	assert.Equal(t, "United Kingdom", rollup.Top[0].Country)

	require.NotNil(t, rollup.Others)
	assert.Equal(t, "Others", rollup.Others.Country)
	assert.InDelta(t, 200.0, rollup.Others.TotalValue, 1e-9)
	assert.Equal(t, int64(4), rollup.Others.Transactions)
	assert.Equal(t, int64(20), rollup.Others.TotalQuantity)

	assert.InDelta(t, 1000.0, rollup.TotalValue, 1e-9)
	assert.InDelta(t, 80.0, rollup.TopShare, 1e-9)
	assert.InDelta(t, 20.0, rollup.OthersShare, 1e-9)
}

func TestRollupCountryValueNoTail(t *testing.T) {
	values := []models.CountryValue{
		{Country: "United Kingdom", TotalValue: 600},
		{Country: "France", TotalValue: 400},
	}

	rollup := RollupCountryValue(values, 10)
	assert.Len(t, rollup.Top, 2)
	assert.Nil(t, rollup.Others, "no bucket when everything fits in the top")
	assert.InDelta(t, 100.0, rollup.TopShare, 1e-9)
	assert.Zero(t, rollup.OthersShare)

	empty := RollupCountryValue(nil, 10)
	assert.Empty(t, empty.Top)
	assert.Zero(t, empty.TopShare)
}

// AOV works on invoice totals first, then takes the mean.
func TestAOVByCountryInvoiceGranularity(t *testing.T) {
	rows := []models.Transaction{
		tx("1", "UK", 2, 5.0, time.January),
		tx("1", "UK", 1, 5.0, time.January),
		tx("C1", "UK", -1, 5.0, time.January),
	}

	aov := AOVByCountry(rows)
	require.Len(t, aov, 1)
	// Invoice "1" totals 15.0; the cancelled invoice is excluded. Averaging
	// the line items directly would give 7.5, which is wrong.
	assert.InDelta(t, 15.0, aov[0].AOV, 1e-9)
}

func TestAOVByCountryOrdering(t *testing.T) {
	rows := []models.Transaction{
		tx("1", "Netherlands", 10, 10.0, time.January), // invoice total 100
		tx("2", "Netherlands", 2, 10.0, time.January),  // invoice total 20 -> AOV 60
		tx("3", "France", 5, 10.0, time.January),       // AOV 50
	}

	aov := AOVByCountry(rows)
	require.Len(t, aov, 2)
	assert.Equal(t, "Netherlands", aov[0].Country)
	assert.InDelta(t, 60.0, aov[0].AOV, 1e-9)
	assert.Equal(t, "France", aov[1].Country)
	assert.InDelta(t, 50.0, aov[1].AOV, 1e-9)
}

func TestAOVByContinent(t *testing.T) {
	countryAOV := []models.CountryAOV{
		{Country: "United Kingdom", AOV: 100},
		{Country: "EIRE", AOV: 300},
		{Country: "Japan", AOV: 50},
		{Country: "Unspecified", AOV: 10},
	}

	continents := AOVByContinent(countryAOV)
	require.Len(t, continents, 3)

	assert.Equal(t, "Europe", continents[0].Continent)
	assert.InDelta(t, 200.0, continents[0].AOV, 1e-9, "unweighted mean of country AOVs")
	assert.Equal(t, "Asia", continents[1].Continent)
	assert.Equal(t, classify.ContinentOther, continents[2].Continent)
}

func TestQuality(t *testing.T) {
	rows := []models.Transaction{
		tx("1", "UK", 2, 1.0, time.January),    // consistent sale
		tx("C2", "UK", -1, 1.0, time.January),  // consistent cancellation
		tx("C3", "UK", 4, 1.0, time.January),   // prefix without negative qty
		tx("4", "UK", -2, 1.0, time.January),   // negative qty without prefix
		{InvoiceNo: "5", Country: "UK", Quantity: 0}, // zero qty: not flagged
	}

	q := Quality(rows)
	assert.Equal(t, int64(2), q.InconsistentRows)
}
