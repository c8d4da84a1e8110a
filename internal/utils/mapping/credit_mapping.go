package mapping

import (
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan.
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:         d.LoanID,
		ClientID:       d.ClientID,
		Principal:      d.Principal,
		InterestRate:   d.InterestRate,
		StartDate:      d.StartDate,
		DurationMonths: d.DurationMonths,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan.
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:         m.LoanID,
		ClientID:       m.ClientID,
		Principal:      m.Principal,
		InterestRate:   m.InterestRate,
		StartDate:      m.StartDate,
		DurationMonths: m.DurationMonths,
		Status:         domain.LoanStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRepayment converts a domain Repayment to a model Repayment.
func ToModelRepayment(d domain.Repayment) models.Repayment {
	return models.Repayment{
		RepaymentID: d.RepaymentID,
		LoanID:      d.LoanID,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Reference:   d.Reference,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRepayment converts a model Repayment to a domain Repayment.
func ToDomainRepayment(m models.Repayment) domain.Repayment {
	return domain.Repayment{
		RepaymentID: m.RepaymentID,
		LoanID:      m.LoanID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Reference:   m.Reference,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelGuarantee converts a domain Guarantee to a model Guarantee.
func ToModelGuarantee(d domain.Guarantee) models.Guarantee {
	return models.Guarantee{
		GuaranteeID:    d.GuaranteeID,
		LoanID:         d.LoanID,
		Description:    d.Description,
		EstimatedValue: d.EstimatedValue,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGuarantee converts a model Guarantee to a domain Guarantee.
func ToDomainGuarantee(m models.Guarantee) domain.Guarantee {
	return domain.Guarantee{
		GuaranteeID:    m.GuaranteeID,
		LoanID:         m.LoanID,
		Description:    m.Description,
		EstimatedValue: m.EstimatedValue,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
