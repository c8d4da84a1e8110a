package services

import (
	"context"
	"time"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// StockService defines warehouse movement and weighbridge operations.
type StockService interface {
	// RecordMovement validates and persists a stock movement. Quantity must
	// be strictly positive for entries and exits.
	RecordMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error)
	UpdateMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error)
	DeleteMovement(ctx context.Context, movementID string) error
	GetMovement(ctx context.Context, movementID string) (*domain.StockMovement, error)
	ListMovements(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error)

	// RecordTicket persists a weighbridge ticket, deriving the net weight
	// from the gross and tare weights.
	RecordTicket(ctx context.Context, ticket domain.WeighbridgeTicket) (*domain.WeighbridgeTicket, error)
	GetTicket(ctx context.Context, ticketID string) (*domain.WeighbridgeTicket, error)
	ListTickets(ctx context.Context, from, to time.Time) ([]domain.WeighbridgeTicket, error)
	DeleteTicket(ctx context.Context, ticketID string) error
}
