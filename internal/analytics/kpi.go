package analytics

import "retail-dashboard/internal/models"

// KPIs computes the headline metric block. Purchases and quantity count
// sales rows only; the customer count spans all rows with an identifier,
// matching the overview report.
func KPIs(rows []models.Transaction) models.KPISummary {
	invoices := make(map[string]struct{})
	customers := make(map[string]struct{})
	var quantity int64

	for _, t := range rows {
		if t.Quantity > 0 {
			invoices[t.InvoiceNo] = struct{}{}
			quantity += int64(t.Quantity)
		}
		if t.CustomerID != "" {
			customers[t.CustomerID] = struct{}{}
		}
	}

	cancels := Cancellations(rows)
	return models.KPISummary{
		TotalPurchases:    len(invoices),
		TotalCustomers:    len(customers),
		TotalQuantity:     quantity,
		Cancellations:     cancels,
		CancellationRatio: CancellationRatio(len(invoices), cancels.Count),
	}
}

// CancellationRatio is the share of cancelled invoices among all invoices,
// in percent. Zero when there are no invoices at all.
func CancellationRatio(saleCount, cancelCount int) float64 {
	total := saleCount + cancelCount
	if total == 0 {
		return 0
	}
	return float64(cancelCount) / float64(total) * 100
}
