package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	paymentRepo := newPgxPaymentRepository(dbPool)
	surplusRepo := newPgxSurplusRepository(dbPool)
	closureRepo := newPgxClosureRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	hrRepo := newPgxHRRepository(dbPool)
	creditRepo := newPgxCreditRepository(dbPool)
	maintenanceRepo := newPgxMaintenanceRepository(dbPool)
	referenceRepo := newPgxReferenceRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		Payment:     paymentRepo,
		Surplus:     surplusRepo,
		Closure:     closureRepo,
		Stock:       stockRepo,
		HR:          hrRepo,
		Credit:      creditRepo,
		Maintenance: maintenanceRepo,
		Reference:   referenceRepo,
		User:        userRepo,
		Reporting:   reportingRepo,
	}
}
