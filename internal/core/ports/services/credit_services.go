package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// CreditService defines loan servicing operations.
type CreditService interface {
	OpenLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error)
	GetLoan(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, clientID string) ([]domain.Loan, error)

	// RecordRepayment persists a repayment and settles the loan when the
	// repaid total reaches principal plus interest. Overpaying is rejected
	// with ErrValidation.
	RecordRepayment(ctx context.Context, repayment domain.Repayment) (*domain.Repayment, error)
	ListRepaymentsByLoan(ctx context.Context, loanID string) ([]domain.Repayment, error)

	// GetLoanBalance recomputes the outstanding balance from the repayment
	// history. The balance is never stored.
	GetLoanBalance(ctx context.Context, loanID string) (decimal.Decimal, error)

	AddGuarantee(ctx context.Context, guarantee domain.Guarantee) (*domain.Guarantee, error)
	ListGuaranteesByLoan(ctx context.Context, loanID string) ([]domain.Guarantee, error)
	DeleteGuarantee(ctx context.Context, guaranteeID string) error
}
