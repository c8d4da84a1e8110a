package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils/calc"
)

// MaintenanceService implements vehicle requisition operations.
type MaintenanceService struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(maintenanceRepo portsrepo.MaintenanceRepositoryFacade) *MaintenanceService {
	return &MaintenanceService{maintenanceRepo: maintenanceRepo}
}

// Ensure implementation matches interface
var _ portssvc.MaintenanceService = (*MaintenanceService)(nil)

func deriveConsumption(requisition *domain.Requisition) error {
	if requisition.IndexEnd.LessThan(requisition.IndexStart) {
		return fmt.Errorf("%w: end index cannot be below start index", apperrors.ErrValidation)
	}
	requisition.IndexDiff, requisition.Ratio, requisition.ConsumptionPerHour =
		calc.ConsumptionStats(requisition.IndexStart, requisition.IndexEnd, requisition.Tonnage)
	return nil
}

// CreateRequisition derives the consumption figures and persists the
// requisition in EN_ATTENTE state.
func (s *MaintenanceService) CreateRequisition(ctx context.Context, requisition domain.Requisition) (*domain.Requisition, error) {
	if err := deriveConsumption(&requisition); err != nil {
		return nil, err
	}

	now := time.Now()
	requisition.RequisitionID = uuid.NewString()
	requisition.Status = domain.RequisitionPending
	requisition.CreatedAt = now
	requisition.LastUpdatedAt = now
	requisition.LastUpdatedBy = requisition.CreatedBy

	if err := s.maintenanceRepo.SaveRequisition(ctx, requisition); err != nil {
		return nil, fmt.Errorf("failed to create requisition: %w", err)
	}

	s.LogInfo(ctx, "requisition created",
		"requisition_id", requisition.RequisitionID,
		"vehicle_id", requisition.VehicleID)
	return &requisition, nil
}

// UpdateRequisition re-derives the consumption figures and overwrites the
// requisition.
func (s *MaintenanceService) UpdateRequisition(ctx context.Context, requisition domain.Requisition) (*domain.Requisition, error) {
	if requisition.RequisitionID == "" {
		return nil, fmt.Errorf("%w: requisition ID is required", apperrors.ErrValidation)
	}
	if err := deriveConsumption(&requisition); err != nil {
		return nil, err
	}

	existing, err := s.maintenanceRepo.FindRequisitionByID(ctx, requisition.RequisitionID)
	if err != nil {
		return nil, err
	}
	requisition.AuditFields = existing.AuditFields
	requisition.Status = existing.Status
	requisition.LastUpdatedAt = time.Now()

	if err := s.maintenanceRepo.UpdateRequisition(ctx, requisition); err != nil {
		return nil, fmt.Errorf("failed to update requisition: %w", err)
	}
	return &requisition, nil
}

// UpdateRequisitionStatus transitions a requisition along the
// EN_ATTENTE -> APPROUVEE -> TERMINEE workflow. Moving backwards is rejected.
func (s *MaintenanceService) UpdateRequisitionStatus(ctx context.Context, requisitionID string, status domain.RequisitionStatus, updatedBy string) error {
	rank := map[domain.RequisitionStatus]int{
		domain.RequisitionPending:   0,
		domain.RequisitionApproved:  1,
		domain.RequisitionCompleted: 2,
	}
	newRank, ok := rank[status]
	if !ok {
		return fmt.Errorf("%w: unknown requisition status %q", apperrors.ErrValidation, status)
	}

	existing, err := s.maintenanceRepo.FindRequisitionByID(ctx, requisitionID)
	if err != nil {
		return err
	}
	if newRank <= rank[existing.Status] {
		return fmt.Errorf("%w: cannot move requisition from %s to %s",
			apperrors.ErrValidation, existing.Status, status)
	}

	existing.Status = status
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updatedBy

	if err := s.maintenanceRepo.UpdateRequisition(ctx, *existing); err != nil {
		return fmt.Errorf("failed to update requisition status: %w", err)
	}

	s.LogInfo(ctx, "requisition status updated",
		"requisition_id", requisitionID,
		"status", string(status))
	return nil
}

// GetRequisition retrieves one requisition.
func (s *MaintenanceService) GetRequisition(ctx context.Context, requisitionID string) (*domain.Requisition, error) {
	return s.maintenanceRepo.FindRequisitionByID(ctx, requisitionID)
}

// ListRequisitions retrieves requisitions, optionally per vehicle.
func (s *MaintenanceService) ListRequisitions(ctx context.Context, vehicleID string) ([]domain.Requisition, error) {
	return s.maintenanceRepo.ListRequisitions(ctx, vehicleID)
}

// DeleteRequisition removes a requisition.
func (s *MaintenanceService) DeleteRequisition(ctx context.Context, requisitionID string) error {
	return s.maintenanceRepo.DeleteRequisition(ctx, requisitionID)
}
