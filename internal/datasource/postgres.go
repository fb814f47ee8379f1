package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pgx "github.com/jackc/pgx/v5"

	"retail-dashboard/internal/models"
)

// PostgresSource reads the dataset from a transactions table. It is a
// read-only source: the dashboard never writes back.
type PostgresSource struct {
	connString string
	logger     *slog.Logger
}

func NewPostgresSource(connString string, logger *slog.Logger) *PostgresSource {
	return &PostgresSource{connString: connString, logger: logger}
}

const transactionsQuery = `
SELECT invoice_no, stock_code, description, quantity, unit_price, invoice_date, customer_id, country
FROM transactions
ORDER BY invoice_date, invoice_no
`

func (s *PostgresSource) Load(ctx context.Context) ([]models.Transaction, models.DataQuality, error) {
	conn, err := pgx.Connect(ctx, s.connString)
	if err != nil {
		return nil, models.DataQuality{}, fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, transactionsQuery)
	if err != nil {
		return nil, models.DataQuality{}, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	start := time.Now()
	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var stockCode, description, customerID *string
		var invoiceDate time.Time
		if err := rows.Scan(&tx.InvoiceNo, &stockCode, &description, &tx.Quantity,
			&tx.UnitPrice, &invoiceDate, &customerID, &tx.Country); err != nil {
			return nil, models.DataQuality{}, fmt.Errorf("scan transaction: %w", err)
		}
		if stockCode != nil {
			tx.StockCode = *stockCode
		}
		if description != nil {
			tx.Description = *description
		}
		if customerID != nil {
			tx.CustomerID = *customerID
		}
		tx.InvoiceDate = invoiceDate
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, models.DataQuality{}, fmt.Errorf("iterate transactions: %w", err)
	}

	if len(transactions) == 0 {
		return nil, models.DataQuality{}, fmt.Errorf("transactions table is empty")
	}

	s.logger.Info("postgres load complete",
		"records", len(transactions),
		"duration", time.Since(start))
	return transactions, models.DataQuality{}, nil
}
