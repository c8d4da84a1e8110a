package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/models"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
	"github.com/agrm/agrm_backend/internal/utils/pagination"
)

const paymentColumns = `payment_id, invoice_id, payment_type, payment_mode, bank_id, bank_name,
	client_id, client_name, amount_paid, surplus_amount, payment_date, cashier_id, reference,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPaymentRow(row pgx.CollectableRow) (models.PaymentRecord, error) {
	var m models.PaymentRecord
	err := row.Scan(
		&m.PaymentID,
		&m.InvoiceID,
		&m.PaymentType,
		&m.PaymentMode,
		&m.BankID,
		&m.BankName,
		&m.ClientID,
		&m.ClientName,
		&m.AmountPaid,
		&m.SurplusAmount,
		&m.PaymentDate,
		&m.CashierID,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment inserts a new payment record. A reused receipt reference
// violates the unique constraint and yields ErrDuplicate.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	m := mapping.ToModelPaymentRecord(payment)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.InvoiceID, m.PaymentType, m.PaymentMode, m.BankID, m.BankName,
		m.ClientID, m.ClientName, m.AmountPaid, m.SurplusAmount, m.PaymentDate, m.CashierID, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("payment reference %s already used: %w", m.Reference, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// UpdatePayment overwrites the mutable fields of an existing payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error {
	m := mapping.ToModelPaymentRecord(payment)

	query := `
		UPDATE payments SET
			invoice_id = $2,
			payment_type = $3,
			payment_mode = $4,
			bank_id = $5,
			bank_name = $6,
			client_id = $7,
			client_name = $8,
			amount_paid = $9,
			surplus_amount = $10,
			payment_date = $11,
			reference = $12,
			last_updated_at = $13,
			last_updated_by = $14
		WHERE payment_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.InvoiceID, m.PaymentType, m.PaymentMode, m.BankID, m.BankName,
		m.ClientID, m.ClientName, m.AmountPaid, m.SurplusAmount, m.PaymentDate, m.Reference,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment record.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPaymentByID retrieves a payment record by its identifier.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %s: %w", paymentID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanPaymentRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPaymentRecord(m)
	return &d, nil
}

// ListPayments retrieves payments in a date range with optional bank and
// cashier filters, keyset-paginated on (payment_date, created_at).
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, from, to time.Time, bankID, cashierID string, limit int, nextToken string) ([]domain.PaymentRecord, string, error) {
	if limit <= 0 {
		limit = 50
	}

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
	if nextToken != "" {
		afterDate, afterCreated, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, afterDate, afterCreated)
		query += fmt.Sprintf(" AND (payment_date, created_at) > ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to know whether a next page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY payment_date, created_at LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query payments: %w", err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanPaymentRow)
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan payments: %w", err)
	}

	var newToken string
	if len(modelPayments) > limit {
		modelPayments = modelPayments[:limit]
		last := modelPayments[len(modelPayments)-1]
		newToken = pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
	}

	payments := make([]domain.PaymentRecord, 0, len(modelPayments))
	for _, m := range modelPayments {
		payments = append(payments, mapping.ToDomainPaymentRecord(m))
	}
	return payments, newToken, nil
}
