package analytics

import (
	"slices"
	"strings"

	"retail-dashboard/internal/classify"
	"retail-dashboard/internal/models"
)

// DefaultParetoThreshold is the classic 80% concentration cut.
const DefaultParetoThreshold = 80.0

// ProductSales rolls up non-cancelled sales per product, ranked by total
// sales descending, ties broken by stock code. Cumulative fields are left
// zero; ParetoCut fills them.
func ProductSales(rows []models.Transaction) []models.ProductSales {
	type productKey struct {
		code string
		desc string
	}
	groups := groupBy(rows, NotCancelled, func(t models.Transaction) productKey {
		return productKey{code: t.StockCode, desc: t.Description}
	})

	result := make([]models.ProductSales, 0, len(groups))
	for k, b := range groups {
		result = append(result, models.ProductSales{
			StockCode:     k.code,
			Description:   k.desc,
			TotalQuantity: b.quantity,
			TotalSales:    b.value,
		})
	}
	slices.SortFunc(result, func(a, b models.ProductSales) int {
		if a.TotalSales != b.TotalSales {
			if a.TotalSales > b.TotalSales {
				return -1
			}
			return 1
		}
		return strings.Compare(a.StockCode, b.StockCode)
	})
	return result
}

// ParetoCut takes products already sorted by sales descending, annotates
// running cumulative share, and returns the prefix whose cumulative percent
// stays within threshold, plus the cumulative percent at the cut. The
// boundary row that pushes the share past the threshold is excluded.
//
// Degenerate inputs: empty rows give an empty cut at 0%; a zero (or
// negative) sales total is reported as 0% rather than dividing; a threshold
// at or past 100 selects everything; at or below 0 selects nothing.
func ParetoCut(sorted []models.ProductSales, threshold float64) ([]models.ProductSales, float64) {
	if len(sorted) == 0 || threshold <= 0 {
		return nil, 0
	}

	var total float64
	for _, p := range sorted {
		total += p.TotalSales
	}

	annotated := make([]models.ProductSales, len(sorted))
	var running float64
	for i, p := range sorted {
		running += p.TotalSales
		p.CumulativeSales = running
		if total > 0 {
			p.CumulativePercent = running / total * 100
		}
		annotated[i] = p
	}

	if threshold >= 100 {
		return annotated, annotated[len(annotated)-1].CumulativePercent
	}

	cut := 0
	for cut < len(annotated) && annotated[cut].CumulativePercent <= threshold {
		cut++
	}
	if cut == 0 {
		return nil, 0
	}
	selected := annotated[:cut]
	return selected, selected[len(selected)-1].CumulativePercent
}

// CategoryBreakdown classifies the Pareto selection into product categories
// and computes each category's share of the selection's sales and units.
// The catch-all category sorts last; the rest by sales share descending.
func CategoryBreakdown(selected []models.ProductSales) []models.CategorySales {
	type agg struct {
		sales float64
		qty   int64
	}
	byCategory := make(map[string]*agg)
	var totalSales float64
	var totalQty int64
	for _, p := range selected {
		cat := classify.Category(p.Description)
		a := byCategory[cat]
		if a == nil {
			a = &agg{}
			byCategory[cat] = a
		}
		a.sales += p.TotalSales
		a.qty += p.TotalQuantity
		totalSales += p.TotalSales
		totalQty += p.TotalQuantity
	}

	result := make([]models.CategorySales, 0, len(byCategory))
	for cat, a := range byCategory {
		row := models.CategorySales{
			Category:     cat,
			TotalSales:   a.sales,
			ProductCount: a.qty,
		}
		if totalSales > 0 {
			row.SalesPercent = a.sales / totalSales * 100
		}
		if totalQty > 0 {
			row.ProductPercent = float64(a.qty) / float64(totalQty) * 100
		}
		result = append(result, row)
	}
	slices.SortFunc(result, func(a, b models.CategorySales) int {
		if (a.Category == classify.CategoryOther) != (b.Category == classify.CategoryOther) {
			if a.Category == classify.CategoryOther {
				return 1
			}
			return -1
		}
		if a.SalesPercent != b.SalesPercent {
			if a.SalesPercent > b.SalesPercent {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Category, b.Category)
	})
	return result
}

// Pareto runs the full concentration analysis for one row snapshot.
func Pareto(rows []models.Transaction, threshold float64) models.ParetoReport {
	ranked := ProductSales(rows)
	selected, cutPercent := ParetoCut(ranked, threshold)

	report := models.ParetoReport{
		Products:      selected,
		Categories:    CategoryBreakdown(selected),
		ProductCount:  len(selected),
		TotalProducts: len(ranked),
		CutPercent:    cutPercent,
	}
	for _, p := range selected {
		report.SalesValue += p.TotalSales
	}
	if report.TotalProducts > 0 {
		report.ProductPercent = float64(report.ProductCount) / float64(report.TotalProducts) * 100
	}
	return report
}
