package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes cash receipts from credit settlements.
type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentCredit PaymentType = "CREDIT"
)

// PaymentRecord is one settled transaction recorded by a cashier.
// Immutable once fetched; reports never mutate records.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"`
	InvoiceID     string          `json:"invoiceID"`
	PaymentType   PaymentType     `json:"paymentType"`
	PaymentMode   string          `json:"paymentMode"`
	BankID        string          `json:"bankID"`
	BankName      string          `json:"bankName"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	SurplusAmount decimal.Decimal `json:"surplusAmount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CashierID     string          `json:"cashierID"`
	Reference     string          `json:"reference"`
	AuditFields
}

// InvoicedAmount is the invoiced share of the payment.
// Always recomputed from its inputs, never stored.
func (p PaymentRecord) InvoicedAmount() decimal.Decimal {
	return p.AmountPaid.Sub(p.SurplusAmount)
}

// Surplus is an excédent receipt whose gross amount is split into a
// tax-exclusive amount and VAT at a fixed rate.
type Surplus struct {
	SurplusID   string          `json:"surplusID"`
	PaymentID   string          `json:"paymentID"`
	ClientID    string          `json:"clientID"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	EntryDate   time.Time       `json:"entryDate"`
	CashierID   string          `json:"cashierID"`
	AuditFields
}

// DailyClosure is the persisted result of the daily cash closure job:
// one row per cashier per closed day.
type DailyClosure struct {
	ClosureID    string          `json:"closureID"`
	CashierID    string          `json:"cashierID"`
	ClosureDate  time.Time       `json:"closureDate"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalSurplus decimal.Decimal `json:"totalSurplus"`
	PaymentCount int             `json:"paymentCount"`
	AuditFields
}
