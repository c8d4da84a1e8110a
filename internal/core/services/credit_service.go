package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
)

// CreditService implements loan servicing operations.
type CreditService struct {
	BaseService
	creditRepo portsrepo.CreditRepositoryFacade
}

// NewCreditService creates a new CreditService.
func NewCreditService(creditRepo portsrepo.CreditRepositoryFacade) *CreditService {
	return &CreditService{creditRepo: creditRepo}
}

// Ensure implementation matches interface
var _ portssvc.CreditService = (*CreditService)(nil)

// OpenLoan validates and persists a new loan in ACTIVE state.
func (s *CreditService) OpenLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error) {
	if loan.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be positive", apperrors.ErrValidation)
	}
	if loan.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
	}
	if loan.DurationMonths <= 0 {
		return nil, fmt.Errorf("%w: duration must be at least 1 month", apperrors.ErrValidation)
	}

	now := time.Now()
	loan.LoanID = uuid.NewString()
	loan.Status = domain.LoanActive
	loan.CreatedAt = now
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = loan.CreatedBy

	if err := s.creditRepo.SaveLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to open loan: %w", err)
	}

	s.LogInfo(ctx, "loan opened",
		"loan_id", loan.LoanID,
		"client_id", loan.ClientID,
		"principal", loan.Principal.String())
	return &loan, nil
}

// GetLoan retrieves one loan.
func (s *CreditService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	return s.creditRepo.FindLoanByID(ctx, loanID)
}

// ListLoans retrieves loans, optionally per client.
func (s *CreditService) ListLoans(ctx context.Context, clientID string) ([]domain.Loan, error) {
	return s.creditRepo.ListLoans(ctx, clientID)
}

// repaidTotal sums the repayment history of a loan.
func (s *CreditService) repaidTotal(ctx context.Context, loanID string) (decimal.Decimal, error) {
	repayments, err := s.creditRepo.ListRepaymentsByLoan(ctx, loanID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, rp := range repayments {
		total = total.Add(rp.Amount)
	}
	return total, nil
}

// RecordRepayment persists a repayment and settles the loan when the repaid
// total reaches principal plus interest. Paying more than the outstanding
// balance is rejected.
func (s *CreditService) RecordRepayment(ctx context.Context, repayment domain.Repayment) (*domain.Repayment, error) {
	if repayment.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: repayment amount must be positive", apperrors.ErrValidation)
	}

	loan, err := s.creditRepo.FindLoanByID(ctx, repayment.LoanID)
	if err != nil {
		return nil, err
	}
	if loan.Status == domain.LoanPaid {
		return nil, fmt.Errorf("%w: loan %s is already settled", apperrors.ErrValidation, loan.LoanID)
	}

	repaid, err := s.repaidTotal(ctx, loan.LoanID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute repaid total: %w", err)
	}

	outstanding := loan.TotalDue().Sub(repaid)
	if repayment.Amount.GreaterThan(outstanding) {
		return nil, fmt.Errorf("%w: repayment %s exceeds outstanding balance %s",
			apperrors.ErrValidation, repayment.Amount.String(), outstanding.String())
	}

	now := time.Now()
	repayment.RepaymentID = uuid.NewString()
	repayment.CreatedAt = now
	repayment.LastUpdatedAt = now
	repayment.LastUpdatedBy = repayment.CreatedBy

	if err := s.creditRepo.SaveRepayment(ctx, repayment); err != nil {
		return nil, fmt.Errorf("failed to record repayment: %w", err)
	}

	if repayment.Amount.Equal(outstanding) {
		if err := s.creditRepo.UpdateLoanStatus(ctx, loan.LoanID, domain.LoanPaid, repayment.CreatedBy); err != nil {
			s.LogError(ctx, err, "failed to settle loan after final repayment", "loan_id", loan.LoanID)
		} else {
			s.LogInfo(ctx, "loan settled", "loan_id", loan.LoanID)
		}
	}

	return &repayment, nil
}

// ListRepaymentsByLoan retrieves the repayments of one loan.
func (s *CreditService) ListRepaymentsByLoan(ctx context.Context, loanID string) ([]domain.Repayment, error) {
	return s.creditRepo.ListRepaymentsByLoan(ctx, loanID)
}

// GetLoanBalance recomputes the outstanding balance from the repayment
// history.
func (s *CreditService) GetLoanBalance(ctx context.Context, loanID string) (decimal.Decimal, error) {
	loan, err := s.creditRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return decimal.Zero, err
	}
	repaid, err := s.repaidTotal(ctx, loanID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute repaid total: %w", err)
	}
	return loan.TotalDue().Sub(repaid), nil
}

// AddGuarantee validates and persists a guarantee.
func (s *CreditService) AddGuarantee(ctx context.Context, guarantee domain.Guarantee) (*domain.Guarantee, error) {
	if guarantee.EstimatedValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: estimated value must be positive", apperrors.ErrValidation)
	}
	if _, err := s.creditRepo.FindLoanByID(ctx, guarantee.LoanID); err != nil {
		return nil, err
	}

	now := time.Now()
	guarantee.GuaranteeID = uuid.NewString()
	guarantee.CreatedAt = now
	guarantee.LastUpdatedAt = now
	guarantee.LastUpdatedBy = guarantee.CreatedBy

	if err := s.creditRepo.SaveGuarantee(ctx, guarantee); err != nil {
		return nil, fmt.Errorf("failed to add guarantee: %w", err)
	}
	return &guarantee, nil
}

// ListGuaranteesByLoan retrieves the guarantees of one loan.
func (s *CreditService) ListGuaranteesByLoan(ctx context.Context, loanID string) ([]domain.Guarantee, error) {
	return s.creditRepo.ListGuaranteesByLoan(ctx, loanID)
}

// DeleteGuarantee removes a guarantee.
func (s *CreditService) DeleteGuarantee(ctx context.Context, guaranteeID string) error {
	return s.creditRepo.DeleteGuarantee(ctx, guaranteeID)
}
