package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-dashboard/internal/models"
)

func purchase(customer string, month time.Month) models.Transaction {
	return models.Transaction{
		InvoiceNo:   "INV-" + customer + month.String(),
		CustomerID:  customer,
		Country:     "United Kingdom",
		Quantity:    1,
		UnitPrice:   1.0,
		InvoiceDate: time.Date(2011, month, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestRetention(t *testing.T) {
	rows := []models.Transaction{
		// Single active month: excluded.
		purchase("12346", time.March),
		// Two purchases in March plus one in July: two distinct months.
		purchase("12347", time.March),
		purchase("12347", time.March),
		purchase("12347", time.July),
		// Four distinct months.
		purchase("12348", time.January),
		purchase("12348", time.February),
		purchase("12348", time.May),
		purchase("12348", time.November),
	}

	report := Retention(rows)
	require.Len(t, report.Records, 2)

	// Ordered by months active descending.
	assert.Equal(t, "12348", report.Records[0].CustomerID)
	assert.Equal(t, 4, report.Records[0].MonthsActive)
	assert.Equal(t, 1, report.Records[0].FirstMonth)
	assert.Equal(t, 11, report.Records[0].LastMonth)

	assert.Equal(t, "12347", report.Records[1].CustomerID)
	assert.Equal(t, 2, report.Records[1].MonthsActive)
	assert.Equal(t, 3, report.Records[1].FirstMonth)
	assert.Equal(t, 7, report.Records[1].LastMonth)

	assert.Equal(t, 2, report.RetainedCount)
	assert.InDelta(t, 3.0, report.AvgMonthsActive, 1e-9)
	assert.Equal(t, 4, report.MaxMonthsActive)
}

func TestRetentionNeverBelowTwoMonths(t *testing.T) {
	rows := []models.Transaction{
		purchase("A", time.March),
		purchase("B", time.April),
		purchase("B", time.April),
	}

	report := Retention(rows)
	assert.Empty(t, report.Records)
	for _, r := range report.Records {
		assert.GreaterOrEqual(t, r.MonthsActive, 2)
	}
	assert.Zero(t, report.RetainedCount)
	assert.Zero(t, report.AvgMonthsActive)
}

func TestRetentionFilters(t *testing.T) {
	anonymous := purchase("", time.January)
	cancelled := purchase("12349", time.January)
	cancelled.InvoiceNo = "C999"
	cancelled.Quantity = -1

	rows := []models.Transaction{
		anonymous,
		purchase("", time.February),
		cancelled,
		purchase("12349", time.February),
	}

	// Anonymous rows and non-positive quantities never produce records, and
	// customer 12349's only qualifying month is February.
	report := Retention(rows)
	assert.Empty(t, report.Records)
}

// Same calendar month across two years is one bucket: a known simplification
// of the month model, pinned here so it changes consciously.
func TestRetentionCalendarMonthBuckets(t *testing.T) {
	early := purchase("12350", time.December)
	late := purchase("12350", time.December)
	late.InvoiceDate = late.InvoiceDate.AddDate(1, 0, 0)

	report := Retention([]models.Transaction{early, late})
	assert.Empty(t, report.Records)
}
