package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is one settled transaction recorded by a cashier.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"`
	InvoiceID     string          `json:"invoiceID"`
	PaymentType   string          `json:"paymentType"`
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

// Surplus is an excédent receipt.
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

// DailyClosure is one closed day for one cashier.
type DailyClosure struct {
	ClosureID    string          `json:"closureID"`
	CashierID    string          `json:"cashierID"`
	ClosureDate  time.Time       `json:"closureDate"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalSurplus decimal.Decimal `json:"totalSurplus"`
	PaymentCount int             `json:"paymentCount"`
	AuditFields
}
