package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/models"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
)

type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(pool *pgxpool.Pool) portsrepo.CreditRepositoryFacade {
	return &PgxCreditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CreditRepositoryFacade = (*PgxCreditRepository)(nil)

func scanLoanRow(row pgx.CollectableRow) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.ClientID,
		&m.Principal,
		&m.InterestRate,
		&m.StartDate,
		&m.DurationMonths,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveLoan inserts a loan.
func (r *PgxCreditRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)

	query := `
		INSERT INTO loans (loan_id, client_id, principal, interest_rate, start_date, duration_months, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.LoanID, m.ClientID, m.Principal, m.InterestRate, m.StartDate, m.DurationMonths, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan %s: %w", m.LoanID, err)
	}
	return nil
}

// UpdateLoanStatus transitions a loan to a new status.
func (r *PgxCreditRepository) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, updatedBy string) error {
	query := `
		UPDATE loans SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE loan_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query, loanID, string(status), time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update loan %s status: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLoanByID retrieves one loan.
func (r *PgxCreditRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `
		SELECT loan_id, client_id, principal, interest_rate, start_date, duration_months, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM loans
		WHERE loan_id = $1;
	`

	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan %s: %w", loanID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanLoanRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}

	d := mapping.ToDomainLoan(m)
	return &d, nil
}

// ListLoans retrieves loans, optionally filtered by client.
func (r *PgxCreditRepository) ListLoans(ctx context.Context, clientID string) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, client_id, principal, interest_rate, start_date, duration_months, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM loans
	`
	args := []interface{}{}
	if clientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, clientID)
	}
	query += ` ORDER BY start_date DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}

	modelLoans, err := pgx.CollectRows(rows, scanLoanRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan loans: %w", err)
	}

	loans := make([]domain.Loan, 0, len(modelLoans))
	for _, m := range modelLoans {
		loans = append(loans, mapping.ToDomainLoan(m))
	}
	return loans, nil
}

// SaveRepayment inserts a repayment.
func (r *PgxCreditRepository) SaveRepayment(ctx context.Context, repayment domain.Repayment) error {
	m := mapping.ToModelRepayment(repayment)

	query := `
		INSERT INTO repayments (repayment_id, loan_id, amount, payment_date, reference,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.RepaymentID, m.LoanID, m.Amount, m.PaymentDate, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save repayment %s: %w", m.RepaymentID, err)
	}
	return nil
}

// ListRepaymentsByLoan retrieves the repayments of one loan in payment order.
func (r *PgxCreditRepository) ListRepaymentsByLoan(ctx context.Context, loanID string) ([]domain.Repayment, error) {
	query := `
		SELECT repayment_id, loan_id, amount, payment_date, reference,
			created_at, created_by, last_updated_at, last_updated_by
		FROM repayments
		WHERE loan_id = $1
		ORDER BY payment_date, created_at;
	`

	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query repayments for loan %s: %w", loanID, err)
	}

	modelRepayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Repayment, error) {
		var m models.Repayment
		err := row.Scan(
			&m.RepaymentID,
			&m.LoanID,
			&m.Amount,
			&m.PaymentDate,
			&m.Reference,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan repayments: %w", err)
	}

	repayments := make([]domain.Repayment, 0, len(modelRepayments))
	for _, m := range modelRepayments {
		repayments = append(repayments, mapping.ToDomainRepayment(m))
	}
	return repayments, nil
}

// SaveGuarantee inserts a guarantee.
func (r *PgxCreditRepository) SaveGuarantee(ctx context.Context, guarantee domain.Guarantee) error {
	m := mapping.ToModelGuarantee(guarantee)

	query := `
		INSERT INTO guarantees (guarantee_id, loan_id, description, estimated_value,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.GuaranteeID, m.LoanID, m.Description, m.EstimatedValue,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save guarantee %s: %w", m.GuaranteeID, err)
	}
	return nil
}

// ListGuaranteesByLoan retrieves the guarantees of one loan.
func (r *PgxCreditRepository) ListGuaranteesByLoan(ctx context.Context, loanID string) ([]domain.Guarantee, error) {
	query := `
		SELECT guarantee_id, loan_id, description, estimated_value,
			created_at, created_by, last_updated_at, last_updated_by
		FROM guarantees
		WHERE loan_id = $1
		ORDER BY created_at;
	`

	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guarantees for loan %s: %w", loanID, err)
	}

	modelGuarantees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Guarantee, error) {
		var m models.Guarantee
		err := row.Scan(
			&m.GuaranteeID,
			&m.LoanID,
			&m.Description,
			&m.EstimatedValue,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan guarantees: %w", err)
	}

	guarantees := make([]domain.Guarantee, 0, len(modelGuarantees))
	for _, m := range modelGuarantees {
		guarantees = append(guarantees, mapping.ToDomainGuarantee(m))
	}
	return guarantees, nil
}

// DeleteGuarantee removes a guarantee.
func (r *PgxCreditRepository) DeleteGuarantee(ctx context.Context, guaranteeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM guarantees WHERE guarantee_id = $1;`, guaranteeID)
	if err != nil {
		return fmt.Errorf("failed to delete guarantee %s: %w", guaranteeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
