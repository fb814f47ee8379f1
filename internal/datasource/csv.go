package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"retail-dashboard/internal/models"
)

const (
	batchSize  = 10000
	maxWorkers = 10
)

// Accepted invoice timestamp layouts, tried in order. The upstream sheet
// exports either ISO or US short dates.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/06 15:04",
}

// CSVSource reads the dataset from a CSV export with a header row. Column
// order is free; columns are located by (case-insensitive) header name.
type CSVSource struct {
	path   string
	logger *slog.Logger
}

func NewCSVSource(path string, logger *slog.Logger) *CSVSource {
	return &CSVSource{path: path, logger: logger}
}

// columnIndex resolves the header layout. CustomerID, StockCode and
// Description are optional; everything else is a structural precondition.
type columnIndex struct {
	invoiceNo   int
	stockCode   int
	description int
	quantity    int
	unitPrice   int
	invoiceDate int
	customerID  int
	country     int
}

func resolveColumns(header []string) (columnIndex, error) {
	idx := columnIndex{invoiceNo: -1, stockCode: -1, description: -1, quantity: -1,
		unitPrice: -1, invoiceDate: -1, customerID: -1, country: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "invoiceno", "invoice_no", "invoice":
			idx.invoiceNo = i
		case "stockcode", "stock_code":
			idx.stockCode = i
		case "description":
			idx.description = i
		case "quantity":
			idx.quantity = i
		case "unitprice", "unit_price", "price":
			idx.unitPrice = i
		case "invoicedate", "invoice_date", "date":
			idx.invoiceDate = i
		case "customerid", "customer_id":
			idx.customerID = i
		case "country":
			idx.country = i
		}
	}

	missing := []string{}
	if idx.invoiceNo < 0 {
		missing = append(missing, "InvoiceNo")
	}
	if idx.quantity < 0 {
		missing = append(missing, "Quantity")
	}
	if idx.unitPrice < 0 {
		missing = append(missing, "UnitPrice")
	}
	if idx.invoiceDate < 0 {
		missing = append(missing, "InvoiceDate")
	}
	if idx.country < 0 {
		missing = append(missing, "Country")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("required columns missing from header: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func (s *CSVSource) Load(ctx context.Context) ([]models.Transaction, models.DataQuality, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, models.DataQuality{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows handled by the skip policy
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		return nil, models.DataQuality{}, fmt.Errorf("read header: %w", err)
	}
	idx, err := resolveColumns(header)
	if err != nil {
		return nil, models.DataQuality{}, err
	}

	start := time.Now()
	var transactions []models.Transaction
	var skipped atomic.Int64

	batch := make([][]string, 0, batchSize)
	flush := func() error {
		parsed, err := s.parseBatch(ctx, batch, idx, &skipped)
		if err != nil {
			return err
		}
		transactions = append(transactions, parsed...)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv-level parse failure on one line: skip it like any other
			// malformed row.
			skipped.Add(1)
			continue
		}

		select {
		case <-ctx.Done():
			return nil, models.DataQuality{}, ctx.Err()
		default:
		}

		batch = append(batch, record)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return nil, models.DataQuality{}, err
			}
		}
	}
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return nil, models.DataQuality{}, err
		}
	}

	if len(transactions) == 0 {
		return nil, models.DataQuality{}, fmt.Errorf("no valid records in %s", s.path)
	}

	quality := models.DataQuality{SkippedRows: skipped.Load()}
	s.logger.Info("csv load complete",
		"path", s.path,
		"records", len(transactions),
		"skipped", quality.SkippedRows,
		"duration", time.Since(start))
	return transactions, quality, nil
}

// parseBatch converts raw records in parallel. Each worker writes only its
// own slot, so the batch needs no locking; invalid rows leave the slot empty
// and bump the skip counter.
func (s *CSVSource) parseBatch(ctx context.Context, batch [][]string, idx columnIndex, skipped *atomic.Int64) ([]models.Transaction, error) {
	parsed := make([]*models.Transaction, len(batch))

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for i, record := range batch {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tx, err := parseRecord(record, idx)
			if err != nil {
				skipped.Add(1)
				return nil
			}
			parsed[i] = &tx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(batch))
	for _, tx := range parsed {
		if tx != nil {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func parseRecord(record []string, idx columnIndex) (models.Transaction, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	quantity, err := strconv.Atoi(field(idx.quantity))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("quantity: %w", err)
	}

	price, err := strconv.ParseFloat(field(idx.unitPrice), 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("unit price: %w", err)
	}
	if price < 0 {
		return models.Transaction{}, fmt.Errorf("unit price negative: %v", price)
	}

	date, err := parseDate(field(idx.invoiceDate))
	if err != nil {
		return models.Transaction{}, err
	}

	invoice := field(idx.invoiceNo)
	if invoice == "" {
		return models.Transaction{}, fmt.Errorf("empty invoice number")
	}

	return models.Transaction{
		InvoiceNo:   invoice,
		StockCode:   field(idx.stockCode),
		Description: field(idx.description),
		Quantity:    quantity,
		UnitPrice:   price,
		InvoiceDate: date,
		CustomerID:  field(idx.customerID),
		Country:     field(idx.country),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable invoice date %q", value)
}
