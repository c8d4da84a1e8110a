package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a credit granted to a client.
type Loan struct {
	LoanID         string          `json:"loanID"`
	ClientID       string          `json:"clientID"`
	Principal      decimal.Decimal `json:"principal"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	StartDate      time.Time       `json:"startDate"`
	DurationMonths int             `json:"durationMonths"`
	Status         string          `json:"status"`
	AuditFields
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
