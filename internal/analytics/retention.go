package analytics

import (
	"slices"
	"strings"
	"time"

	"retail-dashboard/internal/models"
)

// Retention derives repeat-purchase records: identified customers with sales
// in at least two distinct calendar months. Months are the 1-12 calendar
// bucket the dataset's reports use; purchases in the same month of different
// years collapse into one bucket and a December-to-January streak is not
// treated as consecutive. Ordered by months active descending, customer id
// ascending.
func Retention(rows []models.Transaction) models.RetentionReport {
	type activity struct {
		months map[time.Month]struct{}
		first  time.Month
		last   time.Month
	}

	byCustomer := make(map[string]*activity)
	for _, t := range rows {
		if t.Quantity <= 0 || t.CustomerID == "" {
			continue
		}
		a := byCustomer[t.CustomerID]
		if a == nil {
			a = &activity{months: make(map[time.Month]struct{}), first: t.Month(), last: t.Month()}
			byCustomer[t.CustomerID] = a
		}
		m := t.Month()
		a.months[m] = struct{}{}
		if m < a.first {
			a.first = m
		}
		if m > a.last {
			a.last = m
		}
	}

	var report models.RetentionReport
	for id, a := range byCustomer {
		if len(a.months) < 2 {
			continue
		}
		report.Records = append(report.Records, models.RetentionRecord{
			CustomerID:   id,
			MonthsActive: len(a.months),
			FirstMonth:   int(a.first),
			LastMonth:    int(a.last),
		})
	}
	slices.SortFunc(report.Records, func(a, b models.RetentionRecord) int {
		if a.MonthsActive != b.MonthsActive {
			return b.MonthsActive - a.MonthsActive
		}
		return strings.Compare(a.CustomerID, b.CustomerID)
	})

	report.RetainedCount = len(report.Records)
	if report.RetainedCount > 0 {
		var sum int
		for _, r := range report.Records {
			sum += r.MonthsActive
			if r.MonthsActive > report.MaxMonthsActive {
				report.MaxMonthsActive = r.MonthsActive
			}
		}
		report.AvgMonthsActive = float64(sum) / float64(report.RetainedCount)
	}
	return report
}
