package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// CreateRequisitionRequest defines the data needed to open a requisition.
// The consumption figures are derived server side from the readings.
type CreateRequisitionRequest struct {
	VehicleID   string          `json:"vehicleID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	IndexStart  decimal.Decimal `json:"indexStart"`
	IndexEnd    decimal.Decimal `json:"indexEnd"`
	Tonnage     decimal.Decimal `json:"tonnage"`
	RequestDate string          `json:"requestDate" binding:"required,datetime=2006-01-02"`
}

// ToDomainRequisition converts a create request to a domain requisition.
func (r CreateRequisitionRequest) ToDomainRequisition(userID string) domain.Requisition {
	requestDate, _ := time.Parse("2006-01-02", r.RequestDate)
	return domain.Requisition{
		VehicleID:   r.VehicleID,
		Description: r.Description,
		IndexStart:  r.IndexStart,
		IndexEnd:    r.IndexEnd,
		Tonnage:     r.Tonnage,
		RequestDate: requestDate,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// UpdateRequisitionStatusRequest transitions a requisition's workflow state.
type UpdateRequisitionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=EN_ATTENTE APPROUVEE TERMINEE"`
}
