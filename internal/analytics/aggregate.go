// Package analytics is the aggregation pipeline: it turns raw transaction
// rows into the derived report tables the handlers serve. Every operation is
// a pure single pass over an immutable row slice; nothing here caches or
// mutates shared state, so operations can run concurrently over the same
// snapshot.
package analytics

import (
	"slices"
	"strings"
	"time"

	"retail-dashboard/internal/classify"
	"retail-dashboard/internal/models"
)

// Filter is the caller-specified row predicate applied before grouping.
// Which filter applies is a per-report decision, not a global one: sales
// views want positive quantities, cancellation views want the invoice
// prefix.
type Filter func(models.Transaction) bool

func Sold(t models.Transaction) bool { return t.Quantity > 0 }

func NotCancelled(t models.Transaction) bool { return !t.IsCancellation() }

func Cancelled(t models.Transaction) bool { return t.IsCancellation() }

func All(models.Transaction) bool { return true }

// bucket accumulates the supported measures for one group.
type bucket struct {
	invoices map[string]struct{}
	quantity int64
	value    float64
	count    int64
}

func (b *bucket) add(t models.Transaction) {
	if b.invoices == nil {
		b.invoices = make(map[string]struct{})
	}
	b.invoices[t.InvoiceNo] = struct{}{}
	b.quantity += int64(t.Quantity)
	b.value += t.LineValue()
	b.count++
}

func groupBy[K comparable](rows []models.Transaction, keep Filter, key func(models.Transaction) K) map[K]*bucket {
	groups := make(map[K]*bucket)
	for _, t := range rows {
		if !keep(t) {
			continue
		}
		k := key(t)
		b := groups[k]
		if b == nil {
			b = &bucket{}
			groups[k] = b
		}
		b.add(t)
	}
	return groups
}

func monthName(m time.Month) string {
	return m.String()[:3]
}

type monthKey struct {
	label string
	month time.Month
}

// DemandByCountry reports distinct purchase invoices and summed quantity per
// country per calendar month, sales rows only. Ordered by country, then
// month.
func DemandByCountry(rows []models.Transaction) []models.CountryDemand {
	groups := groupBy(rows, Sold, func(t models.Transaction) monthKey {
		return monthKey{label: t.Country, month: t.Month()}
	})

	result := make([]models.CountryDemand, 0, len(groups))
	for k, b := range groups {
		result = append(result, models.CountryDemand{
			Country:       k.label,
			Month:         int(k.month),
			MonthName:     monthName(k.month),
			Frequency:     len(b.invoices),
			TotalQuantity: b.quantity,
		})
	}
	slices.SortFunc(result, func(a, b models.CountryDemand) int {
		if c := strings.Compare(a.Country, b.Country); c != 0 {
			return c
		}
		return a.Month - b.Month
	})
	return result
}

// DemandByRegion is DemandByCountry rolled up through the coarse region
// taxonomy.
func DemandByRegion(rows []models.Transaction) []models.RegionDemand {
	groups := groupBy(rows, Sold, func(t models.Transaction) monthKey {
		return monthKey{label: classify.RegionGroup(t.Country), month: t.Month()}
	})

	result := make([]models.RegionDemand, 0, len(groups))
	for k, b := range groups {
		result = append(result, models.RegionDemand{
			Region:        k.label,
			Month:         int(k.month),
			MonthName:     monthName(k.month),
			Frequency:     len(b.invoices),
			TotalQuantity: b.quantity,
		})
	}
	slices.SortFunc(result, func(a, b models.RegionDemand) int {
		if c := strings.Compare(a.Region, b.Region); c != 0 {
			return c
		}
		return a.Month - b.Month
	})
	return result
}

// TopCountriesByQuantity ranks countries by units sold, descending, ties
// broken by country name for determinism. limit <= 0 means no limit.
func TopCountriesByQuantity(rows []models.Transaction, limit int) []models.CountryQuantity {
	groups := groupBy(rows, Sold, func(t models.Transaction) string { return t.Country })

	result := make([]models.CountryQuantity, 0, len(groups))
	for country, b := range groups {
		result = append(result, models.CountryQuantity{Country: country, TotalQuantity: b.quantity})
	}
	slices.SortFunc(result, func(a, b models.CountryQuantity) int {
		if a.TotalQuantity != b.TotalQuantity {
			if a.TotalQuantity > b.TotalQuantity {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Country, b.Country)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ValueByCountry reports total order value, row count and quantity per
// country over all rows with a country set, cancellations included (they
// subtract). Ordered by value descending.
func ValueByCountry(rows []models.Transaction) []models.CountryValue {
	groups := groupBy(rows, func(t models.Transaction) bool { return t.Country != "" },
		func(t models.Transaction) string { return t.Country })

	result := make([]models.CountryValue, 0, len(groups))
	for country, b := range groups {
		result = append(result, models.CountryValue{
			Country:       country,
			TotalValue:    b.value,
			Transactions:  b.count,
			TotalQuantity: b.quantity,
		})
	}
	slices.SortFunc(result, func(a, b models.CountryValue) int {
		if a.TotalValue != b.TotalValue {
			if a.TotalValue > b.TotalValue {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Country, b.Country)
	})
	return result
}

// RollupCountryValue folds everything past the top limit rows into a single
// "Others" bucket and reports each side's share of the grand total. The input
// must already be sorted by value descending (ValueByCountry output).
func RollupCountryValue(values []models.CountryValue, limit int) models.CountryValueRollup {
	var rollup models.CountryValueRollup
	for _, v := range values {
		rollup.TotalValue += v.TotalValue
	}

	if limit <= 0 || len(values) <= limit {
		rollup.Top = values
	} else {
		rollup.Top = values[:limit]
		others := models.CountryValue{Country: "Others"}
		for _, v := range values[limit:] {
			others.TotalValue += v.TotalValue
			others.Transactions += v.Transactions
			others.TotalQuantity += v.TotalQuantity
		}
		rollup.Others = &others
	}

	if rollup.TotalValue > 0 {
		var topValue float64
		for _, v := range rollup.Top {
			topValue += v.TotalValue
		}
		rollup.TopShare = topValue / rollup.TotalValue * 100
		if rollup.Others != nil {
			rollup.OthersShare = rollup.Others.TotalValue / rollup.TotalValue * 100
		}
	}
	return rollup
}

type invoiceTotal struct {
	country string
	value   float64
}

// invoiceTotals collapses line items to invoice granularity. This is the
// mandatory first step for any order-value average: averaging line values
// directly is a different (wrong) computation.
func invoiceTotals(rows []models.Transaction, keep Filter) map[string]*invoiceTotal {
	totals := make(map[string]*invoiceTotal)
	for _, t := range rows {
		if !keep(t) {
			continue
		}
		inv := totals[t.InvoiceNo]
		if inv == nil {
			inv = &invoiceTotal{country: t.Country}
			totals[t.InvoiceNo] = inv
		}
		inv.value += t.LineValue()
	}
	return totals
}

// AOVByCountry computes average order value per country over non-cancelled
// invoices: per-invoice totals first, then the mean across invoices.
// Ordered by AOV descending.
func AOVByCountry(rows []models.Transaction) []models.CountryAOV {
	type agg struct {
		sum   float64
		count int
	}
	byCountry := make(map[string]*agg)
	for _, inv := range invoiceTotals(rows, NotCancelled) {
		a := byCountry[inv.country]
		if a == nil {
			a = &agg{}
			byCountry[inv.country] = a
		}
		a.sum += inv.value
		a.count++
	}

	result := make([]models.CountryAOV, 0, len(byCountry))
	for country, a := range byCountry {
		result = append(result, models.CountryAOV{Country: country, AOV: a.sum / float64(a.count)})
	}
	slices.SortFunc(result, func(a, b models.CountryAOV) int {
		if a.AOV != b.AOV {
			if a.AOV > b.AOV {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Country, b.Country)
	})
	return result
}

// AOVByContinent is the unweighted mean of country AOVs within each
// continent group, unknown countries pooled under the catch-all label.
// Ordered by AOV descending.
func AOVByContinent(countryAOV []models.CountryAOV) []models.ContinentAOV {
	type agg struct {
		sum   float64
		count int
	}
	byContinent := make(map[string]*agg)
	for _, c := range countryAOV {
		continent := classify.Continent(c.Country)
		a := byContinent[continent]
		if a == nil {
			a = &agg{}
			byContinent[continent] = a
		}
		a.sum += c.AOV
		a.count++
	}

	result := make([]models.ContinentAOV, 0, len(byContinent))
	for continent, a := range byContinent {
		result = append(result, models.ContinentAOV{Continent: continent, AOV: a.sum / float64(a.count)})
	}
	slices.SortFunc(result, func(a, b models.ContinentAOV) int {
		if a.AOV != b.AOV {
			if a.AOV > b.AOV {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Continent, b.Continent)
	})
	return result
}

// Quality scans for rows whose cancellation signals disagree: invoice prefix
// without a negative quantity or vice versa. A data-quality condition, not
// an error; zero-quantity rows are not flagged.
func Quality(rows []models.Transaction) models.DataQuality {
	var q models.DataQuality
	for _, t := range rows {
		cancelled := t.IsCancellation()
		if (cancelled && t.Quantity > 0) || (!cancelled && t.Quantity < 0) {
			q.InconsistentRows++
		}
	}
	return q
}
