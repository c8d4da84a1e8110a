package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils/calc"
)

// StockService implements warehouse movement and weighbridge operations.
type StockService struct {
	BaseService
	stockRepo     portsrepo.StockRepositoryFacade
	referenceRepo portsrepo.ReferenceReader
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, referenceRepo portsrepo.ReferenceReader) *StockService {
	return &StockService{
		stockRepo:     stockRepo,
		referenceRepo: referenceRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.StockService = (*StockService)(nil)

func validateMovement(movement domain.StockMovement) error {
	switch movement.MovementType {
	case domain.MovementEntry, domain.MovementExit:
		if movement.Quantity.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
		}
	case domain.MovementInventory:
		if movement.Quantity.IsNegative() {
			return fmt.Errorf("%w: inventory quantity cannot be negative", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, movement.MovementType)
	}
	if movement.MovementType == domain.MovementExit && movement.Destination == "" {
		return fmt.Errorf("%w: exits require a destination", apperrors.ErrValidation)
	}
	return nil
}

// RecordMovement validates and persists a stock movement after checking the
// article exists.
func (s *StockService) RecordMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error) {
	if err := validateMovement(movement); err != nil {
		return nil, err
	}
	if _, err := s.referenceRepo.FindArticleByID(ctx, movement.ArticleID); err != nil {
		return nil, fmt.Errorf("article %s: %w", movement.ArticleID, err)
	}

	now := time.Now()
	movement.MovementID = uuid.NewString()
	movement.LastUpdatedAt = now
	movement.LastUpdatedBy = movement.CreatedBy
	movement.CreatedAt = now

	if err := s.stockRepo.SaveMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to record stock movement: %w", err)
	}

	s.LogInfo(ctx, "stock movement recorded",
		"movement_id", movement.MovementID,
		"type", string(movement.MovementType),
		"quantity", movement.Quantity.String())
	return &movement, nil
}

// UpdateMovement validates and overwrites a stock movement.
func (s *StockService) UpdateMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error) {
	if movement.MovementID == "" {
		return nil, fmt.Errorf("%w: movement ID is required", apperrors.ErrValidation)
	}
	if err := validateMovement(movement); err != nil {
		return nil, err
	}

	existing, err := s.stockRepo.FindMovementByID(ctx, movement.MovementID)
	if err != nil {
		return nil, err
	}
	movement.AuditFields = existing.AuditFields
	movement.LastUpdatedAt = time.Now()

	if err := s.stockRepo.UpdateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to update stock movement: %w", err)
	}
	return &movement, nil
}

// DeleteMovement removes a stock movement.
func (s *StockService) DeleteMovement(ctx context.Context, movementID string) error {
	return s.stockRepo.DeleteMovement(ctx, movementID)
}

// GetMovement retrieves one stock movement.
func (s *StockService) GetMovement(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	return s.stockRepo.FindMovementByID(ctx, movementID)
}

// ListMovements retrieves movements for a range, optionally per store.
func (s *StockService) ListMovements(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}
	return s.stockRepo.ListMovements(ctx, from, to, storeID)
}

// RecordTicket derives the net weight and persists a weighbridge ticket.
// The two weighings may come in either order, so the net weight is the
// absolute difference.
func (s *StockService) RecordTicket(ctx context.Context, ticket domain.WeighbridgeTicket) (*domain.WeighbridgeTicket, error) {
	if ticket.FirstWeight.IsNegative() || ticket.SecondWeight.IsNegative() {
		return nil, fmt.Errorf("%w: weights cannot be negative", apperrors.ErrValidation)
	}
	if ticket.VehiclePlate == "" {
		return nil, fmt.Errorf("%w: vehicle plate is required", apperrors.ErrValidation)
	}

	ticket.NetWeight = calc.NetWeight(ticket.FirstWeight, ticket.SecondWeight)

	now := time.Now()
	ticket.TicketID = uuid.NewString()
	ticket.CreatedAt = now
	ticket.LastUpdatedAt = now
	ticket.LastUpdatedBy = ticket.CreatedBy

	if err := s.stockRepo.SaveTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to record weighbridge ticket: %w", err)
	}

	s.LogInfo(ctx, "weighbridge ticket recorded",
		"ticket_id", ticket.TicketID,
		"net_weight", ticket.NetWeight.String())
	return &ticket, nil
}

// GetTicket retrieves one weighbridge ticket.
func (s *StockService) GetTicket(ctx context.Context, ticketID string) (*domain.WeighbridgeTicket, error) {
	return s.stockRepo.FindTicketByID(ctx, ticketID)
}

// ListTickets retrieves the weighbridge tickets of a range.
func (s *StockService) ListTickets(ctx context.Context, from, to time.Time) ([]domain.WeighbridgeTicket, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}
	return s.stockRepo.ListTickets(ctx, from, to)
}

// DeleteTicket removes a weighbridge ticket.
func (s *StockService) DeleteTicket(ctx context.Context, ticketID string) error {
	return s.stockRepo.DeleteTicket(ctx, ticketID)
}
