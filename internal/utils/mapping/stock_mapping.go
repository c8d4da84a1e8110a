package mapping

import (
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/models"
)

// ToModelStockMovement converts a domain StockMovement to a model StockMovement.
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:   d.MovementID,
		MovementType: string(d.MovementType),
		ArticleID:    d.ArticleID,
		StoreID:      d.StoreID,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		Destination:  d.Destination,
		MovementDate: d.MovementDate,
		Reference:    d.Reference,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement.
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:   m.MovementID,
		MovementType: domain.MovementType(m.MovementType),
		ArticleID:    m.ArticleID,
		StoreID:      m.StoreID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		Destination:  m.Destination,
		MovementDate: m.MovementDate,
		Reference:    m.Reference,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWeighbridgeTicket converts a domain WeighbridgeTicket to a model WeighbridgeTicket.
func ToModelWeighbridgeTicket(d domain.WeighbridgeTicket) models.WeighbridgeTicket {
	return models.WeighbridgeTicket{
		TicketID:     d.TicketID,
		VehiclePlate: d.VehiclePlate,
		Merchandise:  d.Merchandise,
		FirstWeight:  d.FirstWeight,
		SecondWeight: d.SecondWeight,
		NetWeight:    d.NetWeight,
		WeighDate:    d.WeighDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWeighbridgeTicket converts a model WeighbridgeTicket to a domain WeighbridgeTicket.
func ToDomainWeighbridgeTicket(m models.WeighbridgeTicket) domain.WeighbridgeTicket {
	return domain.WeighbridgeTicket{
		TicketID:     m.TicketID,
		VehiclePlate: m.VehiclePlate,
		Merchandise:  m.Merchandise,
		FirstWeight:  m.FirstWeight,
		SecondWeight: m.SecondWeight,
		NetWeight:    m.NetWeight,
		WeighDate:    m.WeighDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
