package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// ReportingRepository defines the read-only queries feeding the report
// aggregation services. Each method yields a flat record list; grouping is
// done in the service layer.
type ReportingRepository interface {
	// GetPaymentsForRange retrieves the payments of a date range with
	// optional bank and cashier filters, ordered as the backend naturally
	// orders them (payment date, then creation time).
	GetPaymentsForRange(ctx context.Context, from, to time.Time, bankID, cashierID string) ([]domain.PaymentRecord, error)

	// GetExitsForRange retrieves stock exits for a date range, optionally
	// filtered by store.
	GetExitsForRange(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error)

	// GetStockLedgerData retrieves the opening balance of an article in a
	// store before the range start and the movements inside the range.
	GetStockLedgerData(ctx context.Context, articleID, storeID string, from, to time.Time) (decimal.Decimal, []domain.StockMovement, error)

	// GetCashierSummaryData aggregates one day's payments per cashier and
	// payment mode.
	GetCashierSummaryData(ctx context.Context, day time.Time) ([]domain.CashierSummaryRow, error)
}
