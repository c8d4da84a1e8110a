package repositories

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// LoanReader defines read operations for loans.
type LoanReader interface {
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, clientID string) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loans.
type LoanWriter interface {
	SaveLoan(ctx context.Context, loan domain.Loan) error
	UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, updatedBy string) error
}

// RepaymentReader defines read operations for loan repayments.
type RepaymentReader interface {
	ListRepaymentsByLoan(ctx context.Context, loanID string) ([]domain.Repayment, error)
}

// RepaymentWriter defines write operations for loan repayments.
type RepaymentWriter interface {
	SaveRepayment(ctx context.Context, repayment domain.Repayment) error
}

// GuaranteeReader defines read operations for loan guarantees.
type GuaranteeReader interface {
	ListGuaranteesByLoan(ctx context.Context, loanID string) ([]domain.Guarantee, error)
}

// GuaranteeWriter defines write operations for loan guarantees.
type GuaranteeWriter interface {
	SaveGuarantee(ctx context.Context, guarantee domain.Guarantee) error
	DeleteGuarantee(ctx context.Context, guaranteeID string) error
}

// CreditRepositoryFacade combines all credit repository interfaces.
type CreditRepositoryFacade interface {
	LoanReader
	LoanWriter
	RepaymentReader
	RepaymentWriter
	GuaranteeReader
	GuaranteeWriter
}
