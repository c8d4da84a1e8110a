package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
)

// ReportingRepository serves the read-only queries behind the report
// aggregations. Rows are scanned and handed back flat; the services group.
type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetPaymentsForRange retrieves the payments of a range with optional bank
// and cashier filters, ordered by payment date then creation time. The order
// fixes the first-seen grouping order downstream.
func (r *ReportingRepository) GetPaymentsForRange(ctx context.Context, from, to time.Time, bankID, cashierID string) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_date >= $1 AND payment_date <= $2`
	args := []interface{}{from, to}

	if bankID != "" {
		args = append(args, bankID)
		query += fmt.Sprintf(" AND bank_id = $%d", len(args))
	}
	if cashierID != "" {
		args = append(args, cashierID)
		query += fmt.Sprintf(" AND cashier_id = $%d", len(args))
	}
	query += " ORDER BY payment_date, created_at;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for report: %w", err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanPaymentRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments for report: %w", err)
	}

	payments := make([]domain.PaymentRecord, 0, len(modelPayments))
	for _, m := range modelPayments {
		payments = append(payments, mapping.ToDomainPaymentRecord(m))
	}
	return payments, nil
}

// GetExitsForRange retrieves the SORTIE movements of a range, optionally
// filtered by store.
func (r *ReportingRepository) GetExitsForRange(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE movement_type = $1 AND movement_date >= $2 AND movement_date <= $3`
	args := []interface{}{string(domain.MovementExit), from, to}

	if storeID != "" {
		args = append(args, storeID)
		query += fmt.Sprintf(" AND store_id = $%d", len(args))
	}
	query += " ORDER BY movement_date, created_at;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exits for report: %w", err)
	}

	modelMovements, err := pgx.CollectRows(rows, scanMovementRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan exits for report: %w", err)
	}

	movements := make([]domain.StockMovement, 0, len(modelMovements))
	for _, m := range modelMovements {
		movements = append(movements, mapping.ToDomainStockMovement(m))
	}
	return movements, nil
}

// GetStockLedgerData retrieves the opening balance of an article in a store
// before the range start and the movements inside the range. The opening
// balance starts from the last inventory before the range (or zero) and
// applies the entries and exits recorded after it.
func (r *ReportingRepository) GetStockLedgerData(ctx context.Context, articleID, storeID string, from, to time.Time) (decimal.Decimal, []domain.StockMovement, error) {
	opening := decimal.Zero
	inventoryDate := time.Time{}

	lastInventoryQuery := `
		SELECT quantity, movement_date FROM stock_movements
		WHERE article_id = $1 AND store_id = $2 AND movement_date < $3 AND movement_type = 'INVENTAIRE'
		ORDER BY movement_date DESC, created_at DESC LIMIT 1;
	`
	err := r.Pool.QueryRow(ctx, lastInventoryQuery, articleID, storeID, from).Scan(&opening, &inventoryDate)
	if err != nil && err != pgx.ErrNoRows {
		return decimal.Zero, nil, fmt.Errorf("failed to find prior inventory for article %s: %w", articleID, err)
	}

	openingQuery := `
		SELECT COALESCE(SUM(
			CASE movement_type
				WHEN 'ENTREE' THEN quantity
				WHEN 'SORTIE' THEN -quantity
				ELSE 0
			END), 0)
		FROM stock_movements
		WHERE article_id = $1 AND store_id = $2 AND movement_date >= $3 AND movement_date < $4;
	`

	var delta decimal.Decimal
	if err := r.Pool.QueryRow(ctx, openingQuery, articleID, storeID, inventoryDate, from).Scan(&delta); err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to compute opening balance for article %s: %w", articleID, err)
	}
	opening = opening.Add(delta)

	movementsQuery := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE article_id = $1 AND store_id = $2 AND movement_date >= $3 AND movement_date <= $4
		ORDER BY movement_date, created_at;`

	rows, err := r.Pool.Query(ctx, movementsQuery, articleID, storeID, from, to)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to query ledger movements for article %s: %w", articleID, err)
	}

	modelMovements, err := pgx.CollectRows(rows, scanMovementRow)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to scan ledger movements: %w", err)
	}

	movements := make([]domain.StockMovement, 0, len(modelMovements))
	for _, m := range modelMovements {
		movements = append(movements, mapping.ToDomainStockMovement(m))
	}
	return opening, movements, nil
}

// GetCashierSummaryData aggregates one day's payments per cashier and mode.
func (r *ReportingRepository) GetCashierSummaryData(ctx context.Context, day time.Time) ([]domain.CashierSummaryRow, error) {
	query := `
		SELECT cashier_id, payment_mode, COALESCE(SUM(amount_paid), 0), COALESCE(SUM(surplus_amount), 0), COUNT(*)
		FROM payments
		WHERE payment_date::date = $1::date
		GROUP BY cashier_id, payment_mode
		ORDER BY cashier_id, payment_mode;
	`

	rows, err := r.Pool.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query cashier summary: %w", err)
	}

	summary, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CashierSummaryRow, error) {
		var d domain.CashierSummaryRow
		err := row.Scan(&d.CashierID, &d.PaymentMode, &d.TotalPaid, &d.TotalSurplus, &d.PaymentCount)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cashier summary: %w", err)
	}
	return summary, nil
}
