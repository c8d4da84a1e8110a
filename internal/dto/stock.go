package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// CreateMovementRequest defines the data needed to record a stock movement.
type CreateMovementRequest struct {
	MovementType string          `json:"movementType" binding:"required,oneof=ENTREE SORTIE INVENTAIRE"`
	ArticleID    string          `json:"articleID" binding:"required"`
	StoreID      string          `json:"storeID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Destination  string          `json:"destination"`
	MovementDate string          `json:"movementDate" binding:"required,datetime=2006-01-02"`
	Reference    string          `json:"reference"`
}

// ToDomainMovement converts a create request to a domain stock movement.
func (r CreateMovementRequest) ToDomainMovement(userID string) domain.StockMovement {
	movementDate, _ := time.Parse("2006-01-02", r.MovementDate)
	return domain.StockMovement{
		MovementType: domain.MovementType(r.MovementType),
		ArticleID:    r.ArticleID,
		StoreID:      r.StoreID,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		Destination:  r.Destination,
		MovementDate: movementDate,
		Reference:    r.Reference,
		AuditFields:  domain.AuditFields{CreatedBy: userID},
	}
}

// CreateTicketRequest defines the data needed to record a weighbridge ticket.
type CreateTicketRequest struct {
	VehiclePlate string          `json:"vehiclePlate" binding:"required"`
	Merchandise  string          `json:"merchandise" binding:"required"`
	FirstWeight  decimal.Decimal `json:"firstWeight" binding:"required"`
	SecondWeight decimal.Decimal `json:"secondWeight" binding:"required"`
	WeighDate    string          `json:"weighDate" binding:"required,datetime=2006-01-02"`
}

// ToDomainTicket converts a create request to a domain weighbridge ticket.
func (r CreateTicketRequest) ToDomainTicket(userID string) domain.WeighbridgeTicket {
	weighDate, _ := time.Parse("2006-01-02", r.WeighDate)
	return domain.WeighbridgeTicket{
		VehiclePlate: r.VehiclePlate,
		Merchandise:  r.Merchandise,
		FirstWeight:  r.FirstWeight,
		SecondWeight: r.SecondWeight,
		WeighDate:    weighDate,
		AuditFields:  domain.AuditFields{CreatedBy: userID},
	}
}

// RangeRequest is the shared from/to query parameter pair, optionally with a
// store filter.
type RangeRequest struct {
	From    string `form:"from" binding:"required,datetime=2006-01-02"`
	To      string `form:"to" binding:"required,datetime=2006-01-02"`
	StoreID string `form:"storeID"`
}
