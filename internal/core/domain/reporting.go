package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModeGroup aggregates the payments settled with one mode inside a bank.
// Items keep the arrival order of the source list.
type PaymentModeGroup struct {
	Mode          string          `json:"mode"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
	TotalSurplus  decimal.Decimal `json:"totalSurplus"`
	Items         []PaymentRecord `json:"items"`
}

// BankReportGroup aggregates payments per bank; Modes keep first-seen order.
type BankReportGroup struct {
	BankName      string              `json:"bankName"`
	TotalPaid     decimal.Decimal     `json:"totalPaid"`
	TotalInvoiced decimal.Decimal     `json:"totalInvoiced"`
	TotalSurplus  decimal.Decimal     `json:"totalSurplus"`
	Modes         []*PaymentModeGroup `json:"modes"`
}

// DestinationGroup aggregates stock exits shipped to one destination.
type DestinationGroup struct {
	Destination   string          `json:"destination"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	Items         []StockMovement `json:"items"`
}

// StockLedgerRow is one line of the fiche de stock: a movement with the
// running balance after it was applied.
type StockLedgerRow struct {
	MovementDate time.Time       `json:"movementDate"`
	Reference    string          `json:"reference"`
	MovementType MovementType    `json:"movementType"`
	EntryQty     decimal.Decimal `json:"entryQty"`
	ExitQty      decimal.Decimal `json:"exitQty"`
	Balance      decimal.Decimal `json:"balance"`
}

// StockLedger is the fiche de stock for one article over a period.
type StockLedger struct {
	ArticleID      string           `json:"articleID"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	Rows           []StockLedgerRow `json:"rows"`
	ClosingBalance decimal.Decimal  `json:"closingBalance"`
}

// DashboardSnapshot bundles the independent lookups shown on the landing
// page. Sections that failed to load are listed in FailedSections and left
// empty; the snapshot is still returned.
type DashboardSnapshot struct {
	Banks          []Bank              `json:"banks"`
	PaymentModes   []PaymentMode       `json:"paymentModes"`
	Stores         []Store             `json:"stores"`
	CashierSummary []CashierSummaryRow `json:"cashierSummary"`
	FailedSections []string            `json:"failedSections,omitempty"`
}

// CashierSummaryRow is one line of the cashier daily summary.
type CashierSummaryRow struct {
	CashierID    string          `json:"cashierID"`
	PaymentMode  string          `json:"paymentMode"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalSurplus decimal.Decimal `json:"totalSurplus"`
	PaymentCount int             `json:"paymentCount"`
}
