package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"retail-dashboard/internal/models"
)

func TestCountryDemandPrompt(t *testing.T) {
	rows := []models.CountryDemand{
		{Country: "United Kingdom", Month: 1, Frequency: 10, TotalQuantity: 100},
		{Country: "United Kingdom", Month: 2, Frequency: 5, TotalQuantity: 50},
		{Country: "France", Month: 1, Frequency: 3, TotalQuantity: 30},
	}

	prompt := CountryDemandPrompt(rows)
	assert.Contains(t, prompt, "- United Kingdom: 15 orders, 150 units, active in 2 months")
	assert.Contains(t, prompt, "- France: 3 orders, 30 units, active in 1 months")
	assert.Contains(t, prompt, "bullet points only")

	// Highest quantity first.
	ukPos := strings.Index(prompt, "United Kingdom")
	frPos := strings.Index(prompt, "France")
	assert.Less(t, ukPos, frPos)
}

func TestCountryDemandPromptTopCountriesOnly(t *testing.T) {
	countries := []string{
		"United Kingdom", "France", "Germany", "Spain", "Netherlands",
		"Belgium", "Portugal", "Italy", "Norway", "Sweden", "Japan", "Austria",
	}
	rows := make([]models.CountryDemand, len(countries))
	for i, c := range countries {
		// Descending quantities, so the list order is the rank order.
		rows[i] = models.CountryDemand{Country: c, Month: 1, Frequency: 1, TotalQuantity: int64(100 - i)}
	}

	prompt := CountryDemandPrompt(rows)
	assert.Contains(t, prompt, "- Sweden:")
	assert.NotContains(t, prompt, "Japan", "ranks below the chart cut")
	assert.NotContains(t, prompt, "Austria")
}

func TestRegionDemandPrompt(t *testing.T) {
	rows := []models.RegionDemand{
		{Region: "EU Countries", Month: 3, Frequency: 7, TotalQuantity: 70},
		{Region: "Asian Countries", Month: 3, Frequency: 2, TotalQuantity: 20},
	}

	prompt := RegionDemandPrompt(rows)
	assert.Contains(t, prompt, "- EU Countries: 7 orders, 70 units, active in 1 months")
	assert.Contains(t, prompt, "regional group")
}

func TestCountryValuePrompt(t *testing.T) {
	rollup := models.CountryValueRollup{
		Top: []models.CountryValue{
			{Country: "United Kingdom", TotalValue: 600, Transactions: 6, TotalQuantity: 60},
			{Country: "France", TotalValue: 200, Transactions: 2, TotalQuantity: 20},
		},
		Others:      &models.CountryValue{Country: "Others", TotalValue: 200},
		TopShare:    80,
		OthersShare: 20,
		TotalValue:  1000,
	}

	prompt := CountryValuePrompt(rollup)
	assert.Contains(t, prompt, "- 1. United Kingdom: £600.00 (6 orders, 60 units)")
	assert.Contains(t, prompt, "roughly 80.0% of total value")
	assert.Contains(t, prompt, "Remaining countries combined: £200.00 (20.0% of total)")
}

func TestCountryValuePromptNoOthers(t *testing.T) {
	prompt := CountryValuePrompt(models.CountryValueRollup{
		Top:      []models.CountryValue{{Country: "France", TotalValue: 100}},
		TopShare: 100,
	})
	assert.NotContains(t, prompt, "Remaining countries")
}

func TestContinentAOVPromptSortsDescending(t *testing.T) {
	rows := []models.ContinentAOV{
		{Continent: "Asia", AOV: 120.50},
		{Continent: "Europe", AOV: 340.25},
	}

	prompt := ContinentAOVPrompt(rows)
	assert.Contains(t, prompt, "- Europe: average AOV £340.25")
	assert.Less(t, strings.Index(prompt, "Europe"), strings.Index(prompt, "Asia"))
}

func TestKPIRetentionPrompt(t *testing.T) {
	kpi := models.KPISummary{
		TotalPurchases: 1000,
		TotalCustomers: 400,
		TotalQuantity:  25000,
		Cancellations: models.CancellationSummary{
			Count:        50,
			TotalValue:   1234.56,
			AverageValue: 24.69,
		},
		CancellationRatio: 4.76,
	}
	retention := models.RetentionReport{
		RetainedCount:   120,
		AvgMonthsActive: 3.4,
		MaxMonthsActive: 11,
	}

	prompt := KPIRetentionPrompt(kpi, retention)
	assert.Contains(t, prompt, "Total purchases: 1000 orders")
	assert.Contains(t, prompt, "Cancellation ratio: 4.76%")
	assert.Contains(t, prompt, "Repeat customers: 120")
	assert.Contains(t, prompt, "max 11")
}

func TestKPIRetentionPromptNoRepeatCustomers(t *testing.T) {
	prompt := KPIRetentionPrompt(models.KPISummary{}, models.RetentionReport{})
	assert.NotContains(t, prompt, "Repeat customers")
}

func TestParetoPrompt(t *testing.T) {
	categories := []models.CategorySales{
		{Category: "Home Decor", TotalSales: 5000, ProductCount: 800, SalesPercent: 62.5, ProductPercent: 40},
		{Category: "Other", TotalSales: 3000, ProductCount: 1200, SalesPercent: 37.5, ProductPercent: 60},
	}

	prompt := ParetoPrompt(categories)
	assert.Contains(t, prompt, "- 1. Home Decor: sales £5000.00 (62.50%) | 800 units (40.00%)")
	assert.Contains(t, prompt, "- 2. Other:")
	assert.Contains(t, prompt, "80% of sales")
}
