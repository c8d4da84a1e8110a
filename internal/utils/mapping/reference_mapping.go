package mapping

import (
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank.
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:        d.BankID,
		Name:          d.Name,
		AccountNumber: d.AccountNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank.
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:        m.BankID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelArticle converts a domain Article to a model Article.
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ArticleID:   d.ArticleID,
		Code:        d.Code,
		Designation: d.Designation,
		Unit:        d.Unit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticle converts a model Article to a domain Article.
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleID:   m.ArticleID,
		Code:        m.Code,
		Designation: m.Designation,
		Unit:        m.Unit,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEmployee converts a domain Employee to a model Employee.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		Code:        d.Code,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Service:     d.Service,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		Code:        m.Code,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Service:     m.Service,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
