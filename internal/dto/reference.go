package dto

import "github.com/agrm/agrm_backend/internal/core/domain"

// CreateBankRequest defines the data needed to register a bank.
type CreateBankRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"accountNumber"`
}

func (r CreateBankRequest) ToDomainBank(userID string) domain.Bank {
	return domain.Bank{
		Name:          r.Name,
		AccountNumber: r.AccountNumber,
		AuditFields:   domain.AuditFields{CreatedBy: userID},
	}
}

// CreatePaymentModeRequest defines the data needed to register a payment mode.
type CreatePaymentModeRequest struct {
	Code  string `json:"code" binding:"required,uppercase"`
	Label string `json:"label" binding:"required"`
}

func (r CreatePaymentModeRequest) ToDomainPaymentMode(userID string) domain.PaymentMode {
	return domain.PaymentMode{
		Code:        r.Code,
		Label:       r.Label,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateStoreRequest defines the data needed to register a magasin.
type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required"`
	Service string `json:"service"`
}

func (r CreateStoreRequest) ToDomainStore(userID string) domain.Store {
	return domain.Store{
		Name:        r.Name,
		Service:     r.Service,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateArticleRequest defines the data needed to register an article.
type CreateArticleRequest struct {
	Code        string `json:"code" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Unit        string `json:"unit" binding:"required"`
}

func (r CreateArticleRequest) ToDomainArticle(userID string) domain.Article {
	return domain.Article{
		Code:        r.Code,
		Designation: r.Designation,
		Unit:        r.Unit,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (r CreateClientRequest) ToDomainClient(userID string) domain.Client {
	return domain.Client{
		Code:        r.Code,
		Name:        r.Name,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	Code      string `json:"code" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Service   string `json:"service"`
}

func (r CreateEmployeeRequest) ToDomainEmployee(userID string) domain.Employee {
	return domain.Employee{
		Code:        r.Code,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Service:     r.Service,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateVehicleRequest defines the data needed to register an engin.
type CreateVehicleRequest struct {
	Plate       string `json:"plate" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	MeterType   string `json:"meterType" binding:"required,oneof=KM HOURS"`
}

func (r CreateVehicleRequest) ToDomainVehicle(userID string) domain.Vehicle {
	return domain.Vehicle{
		Plate:       r.Plate,
		Designation: r.Designation,
		MeterType:   r.MeterType,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}
