package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment.
// Dates travel as YYYY-MM-DD.
type CreatePaymentRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	PaymentType   string          `json:"paymentType" binding:"required,oneof=CASH CREDIT"`
	PaymentMode   string          `json:"paymentMode" binding:"required"`
	BankID        string          `json:"bankID"`
	BankName      string          `json:"bankName"`
	ClientID      string          `json:"clientID" binding:"required"`
	ClientName    string          `json:"clientName"`
	AmountPaid    decimal.Decimal `json:"amountPaid" binding:"required"`
	SurplusAmount decimal.Decimal `json:"surplusAmount"`
	PaymentDate   string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Reference     string          `json:"reference" binding:"required"`
}

// UpdatePaymentRequest defines the data allowed when correcting a payment.
type UpdatePaymentRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	PaymentType   string          `json:"paymentType" binding:"required,oneof=CASH CREDIT"`
	PaymentMode   string          `json:"paymentMode" binding:"required"`
	BankID        string          `json:"bankID"`
	BankName      string          `json:"bankName"`
	ClientID      string          `json:"clientID" binding:"required"`
	ClientName    string          `json:"clientName"`
	AmountPaid    decimal.Decimal `json:"amountPaid" binding:"required"`
	SurplusAmount decimal.Decimal `json:"surplusAmount"`
	PaymentDate   string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Reference     string          `json:"reference" binding:"required"`
}

// ListPaymentsRequest defines the query parameters of the payment listing.
type ListPaymentsRequest struct {
	From      string `form:"from" binding:"required,datetime=2006-01-02"`
	To        string `form:"to" binding:"required,datetime=2006-01-02"`
	BankID    string `form:"bankID"`
	CashierID string `form:"cashierID"`
	Limit     int    `form:"limit"`
	NextToken string `form:"nextToken"`
}

// ListPaymentsResponse wraps a payment page with its continuation token.
type ListPaymentsResponse struct {
	Payments  []domain.PaymentRecord `json:"payments"`
	NextToken string                 `json:"nextToken,omitempty"`
}

// CreateSurplusRequest defines the data needed to record an excédent.
type CreateSurplusRequest struct {
	PaymentID   string          `json:"paymentID"`
	ClientID    string          `json:"clientID" binding:"required"`
	GrossAmount decimal.Decimal `json:"grossAmount" binding:"required"`
	EntryDate   string          `json:"entryDate" binding:"required,datetime=2006-01-02"`
}

// ToDomainPayment converts a create request to a domain payment record.
func (r CreatePaymentRequest) ToDomainPayment(cashierID string) domain.PaymentRecord {
	paymentDate, _ := time.Parse("2006-01-02", r.PaymentDate)
	return domain.PaymentRecord{
		InvoiceID:     r.InvoiceID,
		PaymentType:   domain.PaymentType(r.PaymentType),
		PaymentMode:   r.PaymentMode,
		BankID:        r.BankID,
		BankName:      r.BankName,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		AmountPaid:    r.AmountPaid,
		SurplusAmount: r.SurplusAmount,
		PaymentDate:   paymentDate,
		CashierID:     cashierID,
		Reference:     r.Reference,
	}
}

// ToDomainPayment converts an update request to a domain payment record.
func (r UpdatePaymentRequest) ToDomainPayment(paymentID string) domain.PaymentRecord {
	paymentDate, _ := time.Parse("2006-01-02", r.PaymentDate)
	return domain.PaymentRecord{
		PaymentID:     paymentID,
		InvoiceID:     r.InvoiceID,
		PaymentType:   domain.PaymentType(r.PaymentType),
		PaymentMode:   r.PaymentMode,
		BankID:        r.BankID,
		BankName:      r.BankName,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		AmountPaid:    r.AmountPaid,
		SurplusAmount: r.SurplusAmount,
		PaymentDate:   paymentDate,
		Reference:     r.Reference,
	}
}

// ToDomainSurplus converts a create request to a domain surplus.
func (r CreateSurplusRequest) ToDomainSurplus(cashierID string) domain.Surplus {
	entryDate, _ := time.Parse("2006-01-02", r.EntryDate)
	return domain.Surplus{
		PaymentID:   r.PaymentID,
		ClientID:    r.ClientID,
		GrossAmount: r.GrossAmount,
		EntryDate:   entryDate,
		CashierID:   cashierID,
		AuditFields: domain.AuditFields{CreatedBy: cashierID},
	}
}
