package analytics

import "retail-dashboard/internal/models"

// Cancellations aggregates reversed invoices: rows whose invoice number
// carries the cancel prefix. Quantities on such rows are stored negative,
// so negating the per-invoice totals yields the positive reversed value.
// The average is across invoices, not line items.
func Cancellations(rows []models.Transaction) models.CancellationSummary {
	totals := invoiceTotals(rows, Cancelled)
	if len(totals) == 0 {
		return models.CancellationSummary{}
	}

	var sum float64
	for _, inv := range totals {
		sum += -inv.value
	}
	return models.CancellationSummary{
		Count:        len(totals),
		TotalValue:   sum,
		AverageValue: sum / float64(len(totals)),
	}
}
