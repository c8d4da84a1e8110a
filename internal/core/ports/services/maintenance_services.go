package services

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// MaintenanceService defines vehicle requisition operations.
type MaintenanceService interface {
	// CreateRequisition persists a requisition, deriving the index
	// difference, ratio and hourly consumption from the meter readings.
	CreateRequisition(ctx context.Context, requisition domain.Requisition) (*domain.Requisition, error)
	UpdateRequisition(ctx context.Context, requisition domain.Requisition) (*domain.Requisition, error)
	UpdateRequisitionStatus(ctx context.Context, requisitionID string, status domain.RequisitionStatus, updatedBy string) error
	GetRequisition(ctx context.Context, requisitionID string) (*domain.Requisition, error)
	ListRequisitions(ctx context.Context, vehicleID string) ([]domain.Requisition, error)
	DeleteRequisition(ctx context.Context, requisitionID string) error
}
