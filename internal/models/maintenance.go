package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Requisition is a vehicle-maintenance request carrying meter readings.
type Requisition struct {
	RequisitionID      string          `json:"requisitionID"`
	VehicleID          string          `json:"vehicleID"`
	Description        string          `json:"description"`
	IndexStart         decimal.Decimal `json:"indexStart"`
	IndexEnd           decimal.Decimal `json:"indexEnd"`
	Tonnage            decimal.Decimal `json:"tonnage"`
	IndexDiff          decimal.Decimal `json:"indexDiff"`
	Ratio              decimal.Decimal `json:"ratio"`
	ConsumptionPerHour decimal.Decimal `json:"consumptionPerHour"`
	RequestDate        time.Time       `json:"requestDate"`
	Status             string          `json:"status"`
	AuditFields
}
