package repositories

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// ReferenceReader defines read operations for reference data used by the
// dropdowns and lookups of every module.
type ReferenceReader interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	ListPaymentModes(ctx context.Context) ([]domain.PaymentMode, error)
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	// FindEmployeeByCode looks up an employee by matricule; a missing
	// employee yields apperrors.ErrNotFound.
	FindEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// ReferenceWriter defines write operations for reference data.
type ReferenceWriter interface {
	SaveBank(ctx context.Context, bank domain.Bank) error
	DeleteBank(ctx context.Context, bankID string) error
	SavePaymentMode(ctx context.Context, mode domain.PaymentMode) error
	SaveStore(ctx context.Context, store domain.Store) error
	SaveArticle(ctx context.Context, article domain.Article) error
	SaveClient(ctx context.Context, client domain.Client) error
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
}

// ReferenceRepositoryFacade combines all reference repository interfaces.
type ReferenceRepositoryFacade interface {
	ReferenceReader
	ReferenceWriter
}
