package mapping

import (
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/models"
)

// ToModelPaymentRecord converts a domain PaymentRecord to a model PaymentRecord.
func ToModelPaymentRecord(d domain.PaymentRecord) models.PaymentRecord {
	return models.PaymentRecord{
		PaymentID:     d.PaymentID,
		InvoiceID:     d.InvoiceID,
		PaymentType:   string(d.PaymentType),
		PaymentMode:   d.PaymentMode,
		BankID:        d.BankID,
		BankName:      d.BankName,
		ClientID:      d.ClientID,
		ClientName:    d.ClientName,
		AmountPaid:    d.AmountPaid,
		SurplusAmount: d.SurplusAmount,
		PaymentDate:   d.PaymentDate,
		CashierID:     d.CashierID,
		Reference:     d.Reference,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentRecord converts a model PaymentRecord to a domain PaymentRecord.
func ToDomainPaymentRecord(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:     m.PaymentID,
		InvoiceID:     m.InvoiceID,
		PaymentType:   domain.PaymentType(m.PaymentType),
		PaymentMode:   m.PaymentMode,
		BankID:        m.BankID,
		BankName:      m.BankName,
		ClientID:      m.ClientID,
		ClientName:    m.ClientName,
		AmountPaid:    m.AmountPaid,
		SurplusAmount: m.SurplusAmount,
		PaymentDate:   m.PaymentDate,
		CashierID:     m.CashierID,
		Reference:     m.Reference,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSurplus converts a domain Surplus to a model Surplus.
func ToModelSurplus(d domain.Surplus) models.Surplus {
	return models.Surplus{
		SurplusID:   d.SurplusID,
		PaymentID:   d.PaymentID,
		ClientID:    d.ClientID,
		GrossAmount: d.GrossAmount,
		NetAmount:   d.NetAmount,
		VATAmount:   d.VATAmount,
		EntryDate:   d.EntryDate,
		CashierID:   d.CashierID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSurplus converts a model Surplus to a domain Surplus.
func ToDomainSurplus(m models.Surplus) domain.Surplus {
	return domain.Surplus{
		SurplusID:   m.SurplusID,
		PaymentID:   m.PaymentID,
		ClientID:    m.ClientID,
		GrossAmount: m.GrossAmount,
		NetAmount:   m.NetAmount,
		VATAmount:   m.VATAmount,
		EntryDate:   m.EntryDate,
		CashierID:   m.CashierID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDailyClosure converts a domain DailyClosure to a model DailyClosure.
func ToModelDailyClosure(d domain.DailyClosure) models.DailyClosure {
	return models.DailyClosure{
		ClosureID:    d.ClosureID,
		CashierID:    d.CashierID,
		ClosureDate:  d.ClosureDate,
		TotalPaid:    d.TotalPaid,
		TotalSurplus: d.TotalSurplus,
		PaymentCount: d.PaymentCount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyClosure converts a model DailyClosure to a domain DailyClosure.
func ToDomainDailyClosure(m models.DailyClosure) domain.DailyClosure {
	return domain.DailyClosure{
		ClosureID:    m.ClosureID,
		CashierID:    m.CashierID,
		ClosureDate:  m.ClosureDate,
		TotalPaid:    m.TotalPaid,
		TotalSurplus: m.TotalSurplus,
		PaymentCount: m.PaymentCount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
