// Package grouping builds the hierarchical report trees consumed by the
// reporting endpoints. Grouping is a single linear pass with keyed
// find-or-create lookups; node order is the first-seen order of each key in
// the input list, which mirrors the ordering of the underlying query.
package grouping

import (
	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// GroupPaymentsByBank reduces a flat payment list into a Bank → PaymentMode →
// records tree, accumulating paid / invoiced / surplus totals at both levels.
//
// Keys are matched by exact string equality; no case or whitespace
// normalization is applied, so differently-labelled banks form distinct
// groups. Records with an empty bank name or mode group under the empty
// label rather than being rejected.
func GroupPaymentsByBank(records []domain.PaymentRecord) []*domain.BankReportGroup {
	groups := make([]*domain.BankReportGroup, 0)
	bankIndex := make(map[string]*domain.BankReportGroup)
	modeIndex := make(map[string]map[string]*domain.PaymentModeGroup)

	for _, record := range records {
		invoiced := record.InvoicedAmount()

		bankGroup, ok := bankIndex[record.BankName]
		if !ok {
			bankGroup = &domain.BankReportGroup{
				BankName: record.BankName,
				Modes:    make([]*domain.PaymentModeGroup, 0),
			}
			bankIndex[record.BankName] = bankGroup
			modeIndex[record.BankName] = make(map[string]*domain.PaymentModeGroup)
			groups = append(groups, bankGroup)
		}

		modeGroup, ok := modeIndex[record.BankName][record.PaymentMode]
		if !ok {
			modeGroup = &domain.PaymentModeGroup{
				Mode:  record.PaymentMode,
				Items: make([]domain.PaymentRecord, 0),
			}
			modeIndex[record.BankName][record.PaymentMode] = modeGroup
			bankGroup.Modes = append(bankGroup.Modes, modeGroup)
		}

		modeGroup.Items = append(modeGroup.Items, record)
		modeGroup.TotalPaid = modeGroup.TotalPaid.Add(record.AmountPaid)
		modeGroup.TotalInvoiced = modeGroup.TotalInvoiced.Add(invoiced)
		modeGroup.TotalSurplus = modeGroup.TotalSurplus.Add(record.SurplusAmount)

		bankGroup.TotalPaid = bankGroup.TotalPaid.Add(record.AmountPaid)
		bankGroup.TotalInvoiced = bankGroup.TotalInvoiced.Add(invoiced)
		bankGroup.TotalSurplus = bankGroup.TotalSurplus.Add(record.SurplusAmount)
	}

	return groups
}

// GroupExitsByDestination reduces stock exits into one group per destination
// with the shipped quantity total. Non-exit movements are skipped.
func GroupExitsByDestination(movements []domain.StockMovement) []*domain.DestinationGroup {
	groups := make([]*domain.DestinationGroup, 0)
	index := make(map[string]*domain.DestinationGroup)

	for _, movement := range movements {
		if movement.MovementType != domain.MovementExit {
			continue
		}
		group, ok := index[movement.Destination]
		if !ok {
			group = &domain.DestinationGroup{
				Destination: movement.Destination,
				Items:       make([]domain.StockMovement, 0),
			}
			index[movement.Destination] = group
			groups = append(groups, group)
		}
		group.Items = append(group.Items, movement)
		group.TotalQuantity = group.TotalQuantity.Add(movement.Quantity)
	}

	return groups
}

// BuildStockLedger walks movements in order and produces the fiche de stock:
// each row carries the running balance after the movement. Entries add to the
// balance, exits subtract, inventory adjustments replace it.
func BuildStockLedger(articleID string, openingBalance decimal.Decimal, movements []domain.StockMovement) domain.StockLedger {
	ledger := domain.StockLedger{
		ArticleID:      articleID,
		OpeningBalance: openingBalance,
		Rows:           make([]domain.StockLedgerRow, 0, len(movements)),
	}

	balance := openingBalance
	for _, movement := range movements {
		row := domain.StockLedgerRow{
			MovementDate: movement.MovementDate,
			Reference:    movement.Reference,
			MovementType: movement.MovementType,
		}
		switch movement.MovementType {
		case domain.MovementEntry:
			row.EntryQty = movement.Quantity
			balance = balance.Add(movement.Quantity)
		case domain.MovementExit:
			row.ExitQty = movement.Quantity
			balance = balance.Sub(movement.Quantity)
		case domain.MovementInventory:
			// Physical count replaces the book balance.
			diff := movement.Quantity.Sub(balance)
			if diff.IsPositive() {
				row.EntryQty = diff
			} else {
				row.ExitQty = diff.Neg()
			}
			balance = movement.Quantity
		}
		row.Balance = balance
		ledger.Rows = append(ledger.Rows, row)
	}

	ledger.ClosingBalance = balance
	return ledger
}
