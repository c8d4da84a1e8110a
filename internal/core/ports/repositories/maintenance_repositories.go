package repositories

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// RequisitionReader defines read operations for maintenance requisitions.
type RequisitionReader interface {
	FindRequisitionByID(ctx context.Context, requisitionID string) (*domain.Requisition, error)
	ListRequisitions(ctx context.Context, vehicleID string) ([]domain.Requisition, error)
}

// RequisitionWriter defines write operations for maintenance requisitions.
type RequisitionWriter interface {
	SaveRequisition(ctx context.Context, requisition domain.Requisition) error
	UpdateRequisition(ctx context.Context, requisition domain.Requisition) error
	DeleteRequisition(ctx context.Context, requisitionID string) error
}

// MaintenanceRepositoryFacade combines all maintenance repository interfaces.
type MaintenanceRepositoryFacade interface {
	RequisitionReader
	RequisitionWriter
}
