package models

import (
	"strings"
	"time"
)

// CancelPrefix marks a reversed (cancelled) invoice. Cancellation rows also
// carry negative quantities; the prefix is the filter key, the quantity sign
// is the data-quality cross-check.
const CancelPrefix = "C"

// Transaction is one invoice line item as loaded from the dataset.
// CustomerID is empty for anonymous (guest) purchases.
type Transaction struct {
	InvoiceNo   string
	StockCode   string
	Description string
	Quantity    int
	UnitPrice   float64
	InvoiceDate time.Time
	CustomerID  string
	Country     string
}

// LineValue is the monetary value of the line: quantity times unit price.
// Negative for cancellation rows.
func (t Transaction) LineValue() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

func (t Transaction) IsCancellation() bool {
	return strings.HasPrefix(t.InvoiceNo, CancelPrefix)
}

func (t Transaction) Month() time.Month {
	return t.InvoiceDate.Month()
}
