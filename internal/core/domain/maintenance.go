package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequisitionStatus is the workflow state of a maintenance requisition.
type RequisitionStatus string

const (
	RequisitionPending   RequisitionStatus = "EN_ATTENTE"
	RequisitionApproved  RequisitionStatus = "APPROUVEE"
	RequisitionCompleted RequisitionStatus = "TERMINEE"
)

// Requisition is a vehicle-maintenance request carrying meter readings.
// IndexDiff, Ratio and ConsumptionPerHour are derived from the readings and
// tonnage; see utils/calc.ConsumptionStats.
type Requisition struct {
	RequisitionID      string            `json:"requisitionID"`
	VehicleID          string            `json:"vehicleID"`
	Description        string            `json:"description"`
	IndexStart         decimal.Decimal   `json:"indexStart"`
	IndexEnd           decimal.Decimal   `json:"indexEnd"`
	Tonnage            decimal.Decimal   `json:"tonnage"`
	IndexDiff          decimal.Decimal   `json:"indexDiff"`
	Ratio              decimal.Decimal   `json:"ratio"`
	ConsumptionPerHour decimal.Decimal   `json:"consumptionPerHour"`
	RequestDate        time.Time         `json:"requestDate"`
	Status             RequisitionStatus `json:"status"`
	AuditFields
}
