package mapping

import (
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/models"
)

// ToModelRequisition converts a domain Requisition to a model Requisition.
func ToModelRequisition(d domain.Requisition) models.Requisition {
	return models.Requisition{
		RequisitionID:      d.RequisitionID,
		VehicleID:          d.VehicleID,
		Description:        d.Description,
		IndexStart:         d.IndexStart,
		IndexEnd:           d.IndexEnd,
		Tonnage:            d.Tonnage,
		IndexDiff:          d.IndexDiff,
		Ratio:              d.Ratio,
		ConsumptionPerHour: d.ConsumptionPerHour,
		RequestDate:        d.RequestDate,
		Status:             string(d.Status),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRequisition converts a model Requisition to a domain Requisition.
func ToDomainRequisition(m models.Requisition) domain.Requisition {
	return domain.Requisition{
		RequisitionID:      m.RequisitionID,
		VehicleID:          m.VehicleID,
		Description:        m.Description,
		IndexStart:         m.IndexStart,
		IndexEnd:           m.IndexEnd,
		Tonnage:            m.Tonnage,
		IndexDiff:          m.IndexDiff,
		Ratio:              m.Ratio,
		ConsumptionPerHour: m.ConsumptionPerHour,
		RequestDate:        m.RequestDate,
		Status:             domain.RequisitionStatus(m.Status),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
