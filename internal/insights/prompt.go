package insights

import (
	"fmt"
	"sort"
	"strings"

	"retail-dashboard/internal/models"
)

// Prompt builders roll monthly tables up to one line per country or region
// before rendering, so the model sees totals rather than the full grid.

// promptCountryLimit matches the chart's top-countries cut, so the
// commentary covers the same countries the reader sees.
const promptCountryLimit = 10

type demandTotals struct {
	key          string
	frequency    int
	quantity     int64
	activeMonths int
}

func rollupDemand(keys []string, months []int, freqs []int, quantities []int64) []demandTotals {
	byKey := make(map[string]*demandTotals)
	monthsSeen := make(map[string]map[int]bool)
	order := []string{}

	for i, key := range keys {
		dt := byKey[key]
		if dt == nil {
			dt = &demandTotals{key: key}
			byKey[key] = dt
			monthsSeen[key] = make(map[int]bool)
			order = append(order, key)
		}
		dt.frequency += freqs[i]
		dt.quantity += quantities[i]
		monthsSeen[key][months[i]] = true
	}

	out := make([]demandTotals, 0, len(order))
	for _, key := range order {
		dt := byKey[key]
		dt.activeMonths = len(monthsSeen[key])
		out = append(out, *dt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].quantity != out[j].quantity {
			return out[i].quantity > out[j].quantity
		}
		return out[i].key < out[j].key
	})
	return out
}

func CountryDemandPrompt(rows []models.CountryDemand) string {
	keys := make([]string, len(rows))
	months := make([]int, len(rows))
	freqs := make([]int, len(rows))
	quantities := make([]int64, len(rows))
	for i, r := range rows {
		keys[i], months[i], freqs[i], quantities[i] = r.Country, r.Month, r.Frequency, r.TotalQuantity
	}

	totals := rollupDemand(keys, months, freqs, quantities)
	if len(totals) > promptCountryLimit {
		totals = totals[:promptCountryLimit]
	}

	var b strings.Builder
	for _, dt := range totals {
		fmt.Fprintf(&b, "- %s: %d orders, %d units, active in %d months\n",
			dt.key, dt.frequency, dt.quantity, dt.activeMonths)
	}

	return fmt.Sprintf(`You are a data analyst reviewing monthly customer demand by country.

Summary (top countries shown on the chart):
%s
Write insights as bullet points (at most 6):
- Which country has the highest demand, and how far ahead of the rest is it
- Any seasonal pattern or standout months (clear spikes or drops)
- Which countries show similar behaviour
- 1-2 business recommendations, e.g. which country to focus on in which months

Answer in bullet points only.`, b.String())
}

func RegionDemandPrompt(rows []models.RegionDemand) string {
	keys := make([]string, len(rows))
	months := make([]int, len(rows))
	freqs := make([]int, len(rows))
	quantities := make([]int64, len(rows))
	for i, r := range rows {
		keys[i], months[i], freqs[i], quantities[i] = r.Region, r.Month, r.Frequency, r.TotalQuantity
	}

	var b strings.Builder
	for _, dt := range rollupDemand(keys, months, freqs, quantities) {
		fmt.Fprintf(&b, "- %s: %d orders, %d units, active in %d months\n",
			dt.key, dt.frequency, dt.quantity, dt.activeMonths)
	}

	return fmt.Sprintf(`Analyze monthly customer demand by regional group from this summary:

%s
Write insights as bullet points:
- Compare the leading regions on order count and unit volume
- Any region growing or slowing across months (rough seasonality)
- Which region should be the priority, and why
- 1-2 recommendations for stock allocation or campaigns

Answer in bullet points only.`, b.String())
}

func CountryValuePrompt(rollup models.CountryValueRollup) string {
	var b strings.Builder
	for i, r := range rollup.Top {
		fmt.Fprintf(&b, "- %d. %s: £%.2f (%d orders, %d units)\n",
			i+1, r.Country, r.TotalValue, r.Transactions, r.TotalQuantity)
	}

	var othersLine string
	if rollup.Others != nil {
		othersLine = fmt.Sprintf("\nRemaining countries combined: £%.2f (%.1f%% of total)",
			rollup.Others.TotalValue, rollup.OthersShare)
	}

	return fmt.Sprintf(`Analyze total order value by country, top countries only.

Top countries (highest first):
%s
- The top countries account for roughly %.1f%% of total value%s

Write insights as bullet points:
- How concentrated revenue is in the leading countries
- Which countries punch above or below their order counts
- Whether the long tail is worth dedicated attention
- 1-2 recommendations for market prioritization

Answer in bullet points only.`, b.String(), rollup.TopShare, othersLine)
}

func ContinentAOVPrompt(rows []models.ContinentAOV) string {
	sorted := make([]models.ContinentAOV, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AOV > sorted[j].AOV })

	var b strings.Builder
	for _, r := range sorted {
		fmt.Fprintf(&b, "- %s: average AOV £%.2f\n", r.Continent, r.AOV)
	}

	return fmt.Sprintf(`This is the average order value (AOV) by continent:

%s
Summarize insights as bullet points:
- Which continents have high or low AOV, and roughly how wide the gap is
- Any pattern suggesting distinct customer segments per continent
- Pricing, bundle, or premium-market ideas per continent

Answer in bullet points only.`, b.String())
}

func KPIRetentionPrompt(kpi models.KPISummary, retention models.RetentionReport) string {
	var retentionSummary string
	if retention.RetainedCount > 0 {
		retentionSummary = fmt.Sprintf(
			"- Repeat customers: %d\n- Average active months per repeat customer: %.1f (max %d)",
			retention.RetainedCount, retention.AvgMonthsActive, retention.MaxMonthsActive)
	}

	return fmt.Sprintf(`Headline business metrics:

- Total purchases: %d orders
- Total customers: %d
- Units sold: %d

Cancelled orders:
- Cancelled order count: %d
- Total cancelled value: £%.2f
- Average value per cancelled order: £%.2f
- Cancellation ratio: %.2f%%

Retention:
%s

Summarize insights as bullet points:
- Overall business health from these figures
- How concerning the cancellation ratio is, and where to focus fixes
- Strength of the repeat-customer base and CRM or loyalty opportunities
- 2-3 strategic recommendations

Answer in bullet points only.`,
		kpi.TotalPurchases, kpi.TotalCustomers, kpi.TotalQuantity,
		kpi.Cancellations.Count, kpi.Cancellations.TotalValue, kpi.Cancellations.AverageValue,
		kpi.CancellationRatio, retentionSummary)
}

func ParetoPrompt(categories []models.CategorySales) string {
	var b strings.Builder
	for i, r := range categories {
		fmt.Fprintf(&b, "- %d. %s: sales £%.2f (%.2f%%) | %d units (%.2f%%)\n",
			i+1, r.Category, r.TotalSales, r.SalesPercent, r.ProductCount, r.ProductPercent)
	}

	return fmt.Sprintf(`This is a Pareto analysis by product category (only products generating 80%% of sales):

%s
Analyze as bullet points:
- Which categories drive the main revenue, and how that compares to their product share
- Any star category with high sales from relatively few products
- Any category with many products but weak sales (candidate for rationalization)
- 2-3 ideas for assortment, stock, or campaign planning

Answer in bullet points only.`, b.String())
}
