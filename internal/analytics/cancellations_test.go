package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-dashboard/internal/models"
)

func TestCancellations(t *testing.T) {
	rows := []models.Transaction{
		{InvoiceNo: "536365", Quantity: 5, UnitPrice: 2.0},
		{InvoiceNo: "C536379", Quantity: -2, UnitPrice: 10.0},
		{InvoiceNo: "C536379", Quantity: -1, UnitPrice: 5.0}, // same invoice
		{InvoiceNo: "C536390", Quantity: -3, UnitPrice: 5.0},
	}

	summary := Cancellations(rows)
	assert.Equal(t, 2, summary.Count)
	// Invoice C536379 reverses 25.0, C536390 reverses 15.0.
	assert.InDelta(t, 40.0, summary.TotalValue, 1e-9)
	assert.InDelta(t, 20.0, summary.AverageValue, 1e-9, "averaged per invoice, not per line")
}

func TestCancellationsEmpty(t *testing.T) {
	summary := Cancellations([]models.Transaction{
		{InvoiceNo: "1", Quantity: 1, UnitPrice: 1.0},
	})
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.TotalValue)
	assert.Zero(t, summary.AverageValue)
}

func TestCancellationRatio(t *testing.T) {
	tests := map[string]struct {
		sales, cancels int
		want           float64
	}{
		"both zero yields zero, not NaN": {0, 0, 0},
		"no cancels":                     {100, 0, 0},
		"ten percent":                    {90, 10, 10},
		"only cancels":                   {0, 5, 100},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CancellationRatio(tc.sales, tc.cancels), 1e-9)
		})
	}
}

func TestKPIs(t *testing.T) {
	rows := []models.Transaction{
		{InvoiceNo: "1", CustomerID: "12345", Quantity: 3, UnitPrice: 2.0},
		{InvoiceNo: "1", CustomerID: "12345", Quantity: 2, UnitPrice: 1.0},
		{InvoiceNo: "2", CustomerID: "", Quantity: 4, UnitPrice: 1.0},
		{InvoiceNo: "C3", CustomerID: "12399", Quantity: -1, UnitPrice: 6.0},
	}

	kpi := KPIs(rows)
	assert.Equal(t, 2, kpi.TotalPurchases, "distinct invoices with positive quantity")
	assert.Equal(t, 2, kpi.TotalCustomers, "identified customers across all rows")
	assert.Equal(t, int64(9), kpi.TotalQuantity)
	assert.Equal(t, 1, kpi.Cancellations.Count)
	assert.InDelta(t, 6.0, kpi.Cancellations.TotalValue, 1e-9)
	require.InDelta(t, 100.0/3.0, kpi.CancellationRatio, 1e-9)
}

func TestKPIsEmptyDataset(t *testing.T) {
	kpi := KPIs(nil)
	assert.Zero(t, kpi.TotalPurchases)
	assert.Zero(t, kpi.TotalCustomers)
	assert.Zero(t, kpi.CancellationRatio)
}
