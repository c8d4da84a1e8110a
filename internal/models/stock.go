package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement is one entry, exit or inventory adjustment.
type StockMovement struct {
	MovementID   string          `json:"movementID"`
	MovementType string          `json:"movementType"`
	ArticleID    string          `json:"articleID"`
	StoreID      string          `json:"storeID"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Destination  string          `json:"destination"`
	MovementDate time.Time       `json:"movementDate"`
	Reference    string          `json:"reference"`
	AuditFields
}

// WeighbridgeTicket is a pont-bascule weighing.
type WeighbridgeTicket struct {
	TicketID     string          `json:"ticketID"`
	VehiclePlate string          `json:"vehiclePlate"`
	Merchandise  string          `json:"merchandise"`
	FirstWeight  decimal.Decimal `json:"firstWeight"`
	SecondWeight decimal.Decimal `json:"secondWeight"`
	NetWeight    decimal.Decimal `json:"netWeight"`
	WeighDate    time.Time       `json:"weighDate"`
	AuditFields
}
