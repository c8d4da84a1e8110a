package services

import (
	"context"
	"time"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// ReportingService defines the report aggregation operations.
type ReportingService interface {
	// BankPaymentReport groups the payments of a range into the
	// bank / payment-mode / records tree with totals at every level.
	BankPaymentReport(ctx context.Context, from, to time.Time, bankID, cashierID string) ([]*domain.BankReportGroup, error)

	// ExitReport groups the stock exits of a range by destination.
	ExitReport(ctx context.Context, from, to time.Time, storeID string) ([]*domain.DestinationGroup, error)

	// StockLedger builds the fiche de stock of one article over a range.
	StockLedger(ctx context.Context, articleID, storeID string, from, to time.Time) (*domain.StockLedger, error)

	// CashierSummary totals one day's receipts per cashier and mode.
	CashierSummary(ctx context.Context, day time.Time) ([]domain.CashierSummaryRow, error)

	// Dashboard loads the landing-page sections concurrently. A failed
	// section is reported in the snapshot, never as an error.
	Dashboard(ctx context.Context, day time.Time) (*domain.DashboardSnapshot, error)
}
