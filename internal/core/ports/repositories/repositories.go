package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines database transaction capabilities shared by
// repositories that need multi-statement atomicity.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles every repository facade for dependency injection.
type RepositoryProvider struct {
	Payment     PaymentRepositoryFacade
	Surplus     SurplusRepositoryFacade
	Closure     ClosureRepositoryFacade
	Stock       StockRepositoryFacade
	HR          HRRepositoryFacade
	Credit      CreditRepositoryFacade
	Maintenance MaintenanceRepositoryFacade
	Reference   ReferenceRepositoryFacade
	User        UserRepositoryFacade
	Reporting   ReportingRepository
}
