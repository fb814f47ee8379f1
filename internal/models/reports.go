package models

// Report rows are created fresh per computation and never mutated afterwards.
// Column names are stable; formatting (currency symbols, renames) belongs to
// the consumers.

// CountryDemand is purchase demand for one country in one calendar month.
type CountryDemand struct {
	Country       string `json:"country"`
	Month         int    `json:"month"`
	MonthName     string `json:"month_name"`
	Frequency     int    `json:"frequency"`
	TotalQuantity int64  `json:"total_quantity"`
}

// RegionDemand is the same measure grouped by the coarse region taxonomy.
type RegionDemand struct {
	Region        string `json:"region"`
	Month         int    `json:"month"`
	MonthName     string `json:"month_name"`
	Frequency     int    `json:"frequency"`
	TotalQuantity int64  `json:"total_quantity"`
}

// CountryQuantity ranks countries by total units sold.
type CountryQuantity struct {
	Country       string `json:"country"`
	TotalQuantity int64  `json:"total_quantity"`
}

// CountryValue is the order-value rollup per country over all rows.
type CountryValue struct {
	Country       string  `json:"country"`
	TotalValue    float64 `json:"total_value"`
	Transactions  int64   `json:"transaction_count"`
	TotalQuantity int64   `json:"total_quantity"`
}

// CountryValueRollup is the chart view of the country value table: the top
// countries kept as rows, everything past the cut folded into one aggregate
// bucket, with each side's share of the grand total.
type CountryValueRollup struct {
	Top         []CountryValue `json:"top"`
	Others      *CountryValue  `json:"others,omitempty"`
	TopShare    float64        `json:"top_share"`
	OthersShare float64        `json:"others_share"`
	TotalValue  float64        `json:"total_value"`
}

// CountryAOV is the average order value per country, computed over invoice
// totals, never over line items.
type CountryAOV struct {
	Country string  `json:"country"`
	AOV     float64 `json:"aov"`
}

// ContinentAOV is the mean of country AOVs within one continent group.
type ContinentAOV struct {
	Continent string  `json:"continent"`
	AOV       float64 `json:"aov"`
}

// RetentionRecord describes one repeat customer: active in at least two
// distinct calendar months.
type RetentionRecord struct {
	CustomerID   string `json:"customer_id"`
	MonthsActive int    `json:"months_active"`
	FirstMonth   int    `json:"first_purchase_month"`
	LastMonth    int    `json:"last_purchase_month"`
}

// RetentionReport carries the per-customer records plus summary figures used
// by the KPI block and the insight prompts.
type RetentionReport struct {
	Records         []RetentionRecord `json:"records"`
	RetainedCount   int               `json:"retained_count"`
	AvgMonthsActive float64           `json:"avg_months_active"`
	MaxMonthsActive int               `json:"max_months_active"`
}

// CancellationSummary aggregates reversed invoices. Values are positive
// (negated from the stored negative quantities).
type CancellationSummary struct {
	Count        int     `json:"count"`
	TotalValue   float64 `json:"total_value"`
	AverageValue float64 `json:"average_value"`
}

// KPISummary is the headline metric block.
type KPISummary struct {
	TotalPurchases    int                 `json:"total_purchases"`
	TotalCustomers    int                 `json:"total_customers"`
	TotalQuantity     int64               `json:"total_quantity"`
	Cancellations     CancellationSummary `json:"cancellations"`
	CancellationRatio float64             `json:"cancellation_ratio"`
}

// ProductSales is one product's sales rollup, annotated with cumulative
// figures once ranked for the Pareto cut.
type ProductSales struct {
	StockCode         string  `json:"stock_code"`
	Description       string  `json:"description"`
	TotalQuantity     int64   `json:"total_quantity"`
	TotalSales        float64 `json:"total_sales"`
	CumulativeSales   float64 `json:"cumulative_sales"`
	CumulativePercent float64 `json:"cumulative_percent"`
}

// CategorySales summarizes the Pareto selection by product category.
// ProductCount follows the original report: summed unit quantity, not SKUs.
type CategorySales struct {
	Category       string  `json:"category"`
	TotalSales     float64 `json:"total_sales"`
	ProductCount   int64   `json:"product_count"`
	SalesPercent   float64 `json:"sales_percent"`
	ProductPercent float64 `json:"product_percent"`
}

// ParetoReport is the 80% sales-concentration analysis.
type ParetoReport struct {
	Products       []ProductSales  `json:"products"`
	Categories     []CategorySales `json:"categories"`
	ProductCount   int             `json:"product_count"`
	TotalProducts  int             `json:"total_products"`
	ProductPercent float64         `json:"product_percent"`
	SalesValue     float64         `json:"sales_value"`
	CutPercent     float64         `json:"cut_percent"`
}

// DataQuality counts rows the loader or pipeline flagged without rejecting.
type DataQuality struct {
	SkippedRows      int64 `json:"skipped_rows"`
	InconsistentRows int64 `json:"inconsistent_rows"`
}
