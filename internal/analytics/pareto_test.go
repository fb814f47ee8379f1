package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-dashboard/internal/classify"
	"retail-dashboard/internal/models"
)

func product(code, desc string, sales float64) models.ProductSales {
	return models.ProductSales{StockCode: code, Description: desc, TotalSales: sales, TotalQuantity: 1}
}

// Values [50,30,15,5] with threshold 80. Cumulative
// percents run [50,80,95,100]; the 80% row is included (inclusive-while),
// the 95% row is excluded.
func TestParetoCutInclusiveWhile(t *testing.T) {
	sorted := []models.ProductSales{
		product("A", "ALPHA", 50),
		product("B", "BETA", 30),
		product("C", "GAMMA", 15),
		product("D", "DELTA", 5),
	}

	selected, cut := ParetoCut(sorted, 80)
	require.Len(t, selected, 2)
	assert.Equal(t, "A", selected[0].StockCode)
	assert.Equal(t, "B", selected[1].StockCode)
	assert.InDelta(t, 80.0, cut, 1e-9)
	assert.InDelta(t, 50.0, selected[0].CumulativePercent, 1e-9)
	assert.InDelta(t, 80.0, selected[1].CumulativePercent, 1e-9)
}

func TestParetoCutMonotonicAndFullAtHundred(t *testing.T) {
	sorted := []models.ProductSales{
		product("A", "A", 40), product("B", "B", 25), product("C", "C", 20),
		product("D", "D", 10), product("E", "E", 5),
	}

	selected, cut := ParetoCut(sorted, 100)
	require.Len(t, selected, len(sorted))

	prev := 0.0
	for _, p := range selected {
		assert.GreaterOrEqual(t, p.CumulativePercent, prev)
		prev = p.CumulativePercent
	}
	assert.InDelta(t, 100.0, selected[len(selected)-1].CumulativePercent, 1e-9)
	assert.InDelta(t, 100.0, cut, 1e-9)
}

func TestParetoCutEdgeCases(t *testing.T) {
	sorted := []models.ProductSales{product("A", "A", 10), product("B", "B", 5)}

	t.Run("empty input", func(t *testing.T) {
		selected, cut := ParetoCut(nil, 80)
		assert.Empty(t, selected)
		assert.Zero(t, cut)
	})

	t.Run("threshold at zero", func(t *testing.T) {
		selected, cut := ParetoCut(sorted, 0)
		assert.Empty(t, selected)
		assert.Zero(t, cut)
	})

	t.Run("negative threshold", func(t *testing.T) {
		selected, _ := ParetoCut(sorted, -5)
		assert.Empty(t, selected)
	})

	t.Run("threshold past hundred", func(t *testing.T) {
		selected, cut := ParetoCut(sorted, 150)
		assert.Len(t, selected, 2)
		assert.InDelta(t, 100.0, cut, 1e-9)
	})

	t.Run("zero total reports zero percent", func(t *testing.T) {
		zeros := []models.ProductSales{product("A", "A", 0), product("B", "B", 0)}
		selected, cut := ParetoCut(zeros, 80)
		// All cumulative percents are 0, so everything stays within threshold.
		assert.Len(t, selected, 2)
		assert.Zero(t, cut)
		for _, p := range selected {
			assert.Zero(t, p.CumulativePercent)
		}
	})
}

func TestProductSalesExcludesCancellations(t *testing.T) {
	rows := []models.Transaction{
		{InvoiceNo: "1", StockCode: "10002", Description: "RED MUG", Quantity: 4, UnitPrice: 2.5},
		{InvoiceNo: "2", StockCode: "10002", Description: "RED MUG", Quantity: 2, UnitPrice: 2.5},
		{InvoiceNo: "C3", StockCode: "10002", Description: "RED MUG", Quantity: -2, UnitPrice: 2.5},
		{InvoiceNo: "4", StockCode: "10005", Description: "WOODEN FRAME", Quantity: 1, UnitPrice: 30},
	}

	ranked := ProductSales(rows)
	require.Len(t, ranked, 2)
	assert.Equal(t, "10005", ranked[0].StockCode, "sorted by sales descending")
	assert.Equal(t, "10002", ranked[1].StockCode)
	assert.InDelta(t, 15.0, ranked[1].TotalSales, 1e-9, "cancelled line excluded")
	assert.Equal(t, int64(6), ranked[1].TotalQuantity)
}

func TestCategoryBreakdown(t *testing.T) {
	selected := []models.ProductSales{
		{Description: "RED RETRO MUG", TotalSales: 60, TotalQuantity: 6},
		{Description: "BLUE TEAPOT", TotalSales: 20, TotalQuantity: 2},
		{Description: "GLITTER BAUBLE", TotalSales: 20, TotalQuantity: 2},
	}

	categories := CategoryBreakdown(selected)
	require.Len(t, categories, 2)

	assert.Equal(t, "Kitchenware", categories[0].Category)
	assert.InDelta(t, 80.0, categories[0].SalesPercent, 1e-9)
	assert.InDelta(t, 80.0, categories[0].ProductPercent, 1e-9)
	assert.Equal(t, int64(8), categories[0].ProductCount)

	// Catch-all sorts last regardless of share.
	assert.Equal(t, classify.CategoryOther, categories[1].Category)
}

func TestCategoryBreakdownOtherSortsLast(t *testing.T) {
	selected := []models.ProductSales{
		{Description: "MYSTERY ITEM", TotalSales: 90, TotalQuantity: 9},
		{Description: "SCENTED OIL", TotalSales: 10, TotalQuantity: 1},
	}

	categories := CategoryBreakdown(selected)
	require.Len(t, categories, 2)
	assert.Equal(t, "Candles & Fragrance", categories[0].Category)
	assert.Equal(t, classify.CategoryOther, categories[1].Category)
}

func TestPareto(t *testing.T) {
	now := time.Date(2011, time.June, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Transaction{
		{InvoiceNo: "1", StockCode: "A", Description: "WOODEN SIGN", Quantity: 10, UnitPrice: 5, InvoiceDate: now},
		{InvoiceNo: "2", StockCode: "B", Description: "PARTY BUNTING", Quantity: 10, UnitPrice: 3, InvoiceDate: now},
		{InvoiceNo: "3", StockCode: "C", Description: "TINY TRINKET", Quantity: 10, UnitPrice: 1.5, InvoiceDate: now},
		{InvoiceNo: "4", StockCode: "D", Description: "SPARE PART", Quantity: 10, UnitPrice: 0.5, InvoiceDate: now},
	}

	report := Pareto(rows, DefaultParetoThreshold)
	assert.Equal(t, 2, report.ProductCount)
	assert.Equal(t, 4, report.TotalProducts)
	assert.InDelta(t, 50.0, report.ProductPercent, 1e-9)
	assert.InDelta(t, 80.0, report.SalesValue, 1e-9)
	assert.InDelta(t, 80.0, report.CutPercent, 1e-9)
	require.NotEmpty(t, report.Categories)
	assert.Equal(t, "Home Decor", report.Categories[0].Category)
}

func TestParetoEmptyDataset(t *testing.T) {
	report := Pareto(nil, DefaultParetoThreshold)
	assert.Zero(t, report.ProductCount)
	assert.Zero(t, report.TotalProducts)
	assert.Zero(t, report.CutPercent)
	assert.Empty(t, report.Categories)
}
