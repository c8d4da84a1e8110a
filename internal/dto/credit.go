package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// CreateLoanRequest defines the data needed to open a loan.
type CreateLoanRequest struct {
	ClientID       string          `json:"clientID" binding:"required"`
	Principal      decimal.Decimal `json:"principal" binding:"required"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	StartDate      string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	DurationMonths int             `json:"durationMonths" binding:"required,min=1"`
}

// ToDomainLoan converts a create request to a domain loan.
func (r CreateLoanRequest) ToDomainLoan(userID string) domain.Loan {
	startDate, _ := time.Parse("2006-01-02", r.StartDate)
	return domain.Loan{
		ClientID:       r.ClientID,
		Principal:      r.Principal,
		InterestRate:   r.InterestRate,
		StartDate:      startDate,
		DurationMonths: r.DurationMonths,
		AuditFields:    domain.AuditFields{CreatedBy: userID},
	}
}

// CreateRepaymentRequest defines the data needed to record a repayment.
type CreateRepaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Reference   string          `json:"reference"`
}

// ToDomainRepayment converts a create request to a domain repayment.
func (r CreateRepaymentRequest) ToDomainRepayment(loanID, userID string) domain.Repayment {
	paymentDate, _ := time.Parse("2006-01-02", r.PaymentDate)
	return domain.Repayment{
		LoanID:      loanID,
		Amount:      r.Amount,
		PaymentDate: paymentDate,
		Reference:   r.Reference,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateGuaranteeRequest defines the data needed to pledge a guarantee.
type CreateGuaranteeRequest struct {
	Description    string          `json:"description" binding:"required"`
	EstimatedValue decimal.Decimal `json:"estimatedValue" binding:"required"`
}

// ToDomainGuarantee converts a create request to a domain guarantee.
func (r CreateGuaranteeRequest) ToDomainGuarantee(loanID, userID string) domain.Guarantee {
	return domain.Guarantee{
		LoanID:         loanID,
		Description:    r.Description,
		EstimatedValue: r.EstimatedValue,
		AuditFields:    domain.AuditFields{CreatedBy: userID},
	}
}

// LoanBalanceResponse reports the recomputed outstanding balance of a loan.
type LoanBalanceResponse struct {
	LoanID  string          `json:"loanID"`
	Balance decimal.Decimal `json:"balance"`
}
