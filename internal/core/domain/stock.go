package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementEntry     MovementType = "ENTREE"
	MovementExit      MovementType = "SORTIE"
	MovementInventory MovementType = "INVENTAIRE"
)

// StockMovement is one entry, exit or inventory adjustment for an article in a store.
type StockMovement struct {
	MovementID   string          `json:"movementID"`
	MovementType MovementType    `json:"movementType"`
	ArticleID    string          `json:"articleID"`
	StoreID      string          `json:"storeID"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	// Destination is only meaningful for exits.
	Destination  string    `json:"destination"`
	MovementDate time.Time `json:"movementDate"`
	Reference    string    `json:"reference"`
	AuditFields
}

// WeighbridgeTicket is a pont-bascule weighing: two passes over the bridge,
// net weight is the absolute difference since weighing order varies.
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
