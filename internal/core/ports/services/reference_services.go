package services

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// ReferenceService defines reference-data operations backing dropdowns and
// lookups.
type ReferenceService interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	CreateBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error)
	DeleteBank(ctx context.Context, bankID string) error

	ListPaymentModes(ctx context.Context) ([]domain.PaymentMode, error)
	CreatePaymentMode(ctx context.Context, mode domain.PaymentMode) (*domain.PaymentMode, error)

	ListStores(ctx context.Context) ([]domain.Store, error)
	CreateStore(ctx context.Context, store domain.Store) (*domain.Store, error)

	ListArticles(ctx context.Context) ([]domain.Article, error)
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)

	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
}
