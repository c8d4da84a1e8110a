package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the servicing state of a loan.
type LoanStatus string

const (
	LoanActive LoanStatus = "ACTIVE"
	LoanPaid   LoanStatus = "SOLDE"
)

// Loan is a credit granted to a client.
type Loan struct {
	LoanID         string          `json:"loanID"`
	ClientID       string          `json:"clientID"`
	Principal      decimal.Decimal `json:"principal"`
	InterestRate   decimal.Decimal `json:"interestRate"` // e.g. 0.12 for 12%
	StartDate      time.Time       `json:"startDate"`
	DurationMonths int             `json:"durationMonths"`
	Status         LoanStatus      `json:"status"`
	AuditFields
}

// TotalDue is principal plus simple interest over the loan duration.
func (l Loan) TotalDue() decimal.Decimal {
	interest := l.Principal.Mul(l.InterestRate)
	return l.Principal.Add(interest)
}

// Repayment is one settlement against a loan.
type Repayment struct {
	RepaymentID string          `json:"repaymentID"`
	LoanID      string          `json:"loanID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Reference   string          `json:"reference"`
	AuditFields
}

// Guarantee is a pledge securing a loan.
type Guarantee struct {
	GuaranteeID    string          `json:"guaranteeID"`
	LoanID         string          `json:"loanID"`
	Description    string          `json:"description"`
	EstimatedValue decimal.Decimal `json:"estimatedValue"`
	AuditFields
}
