package repositories

import (
	"context"
	"time"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// StockMovementReader defines read operations for stock movements.
type StockMovementReader interface {
	FindMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error)

	// ListMovements retrieves movements in a date range, optionally filtered
	// by store, ordered by movement date then creation time.
	ListMovements(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error)
}

// StockMovementWriter defines write operations for stock movements.
type StockMovementWriter interface {
	SaveMovement(ctx context.Context, movement domain.StockMovement) error
	UpdateMovement(ctx context.Context, movement domain.StockMovement) error
	DeleteMovement(ctx context.Context, movementID string) error
}

// WeighbridgeReader defines read operations for weighbridge tickets.
type WeighbridgeReader interface {
	FindTicketByID(ctx context.Context, ticketID string) (*domain.WeighbridgeTicket, error)
	ListTickets(ctx context.Context, from, to time.Time) ([]domain.WeighbridgeTicket, error)
}

// WeighbridgeWriter defines write operations for weighbridge tickets.
type WeighbridgeWriter interface {
	SaveTicket(ctx context.Context, ticket domain.WeighbridgeTicket) error
	DeleteTicket(ctx context.Context, ticketID string) error
}

// StockRepositoryFacade combines all stock repository interfaces.
type StockRepositoryFacade interface {
	StockMovementReader
	StockMovementWriter
	WeighbridgeReader
	WeighbridgeWriter
}
