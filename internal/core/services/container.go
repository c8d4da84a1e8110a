package services

import (
	"time"

	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Auth        portssvc.AuthService
	User        portssvc.UserService
	Treasury    portssvc.TreasuryService
	Stock       portssvc.StockService
	HR          portssvc.HRService
	Credit      portssvc.CreditService
	Maintenance portssvc.MaintenanceService
	Reference   portssvc.ReferenceService
	Reporting   portssvc.ReportingService
}

// NewContainer creates a new service container with properly initialized
// dependencies. The publisher may be nil when AMQP is not configured.
func NewContainer(repos *portsrepo.RepositoryProvider, publisher PaymentEventPublisher, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *Container {
	return &Container{
		Auth:        NewAuthService(repos.User, jwtSecret, jwtExpiry, jwtIssuer),
		User:        NewUserService(repos.User),
		Treasury:    NewTreasuryService(repos.Payment, repos.Surplus, repos.Closure, repos.Reporting, publisher),
		Stock:       NewStockService(repos.Stock, repos.Reference),
		HR:          NewHRService(repos.HR),
		Credit:      NewCreditService(repos.Credit),
		Maintenance: NewMaintenanceService(repos.Maintenance),
		Reference:   NewReferenceService(repos.Reference),
		Reporting:   NewReportingService(repos.Reporting, repos.Reference),
	}
}
