package grouping_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/utils/grouping"
)

func payment(bank, mode string, paid, surplus int64) domain.PaymentRecord {
	return domain.PaymentRecord{
		BankName:      bank,
		PaymentMode:   mode,
		AmountPaid:    decimal.NewFromInt(paid),
		SurplusAmount: decimal.NewFromInt(surplus),
	}
}

func TestGroupPaymentsByBank(t *testing.T) {
	records := []domain.PaymentRecord{
		payment("A", "ESPECES", 100, 0),
		payment("A", "CHEQUE", 50, 10),
		payment("B", "ESPECES", 30, 0),
	}

	groups := grouping.GroupPaymentsByBank(records)
	require.Len(t, groups, 2)

	bankA := groups[0]
	assert.Equal(t, "A", bankA.BankName)
	assert.True(t, bankA.TotalPaid.Equal(decimal.NewFromInt(150)))
	assert.True(t, bankA.TotalInvoiced.Equal(decimal.NewFromInt(140)))
	assert.True(t, bankA.TotalSurplus.Equal(decimal.NewFromInt(10)))
	require.Len(t, bankA.Modes, 2)
	assert.Equal(t, "ESPECES", bankA.Modes[0].Mode)
	assert.Equal(t, "CHEQUE", bankA.Modes[1].Mode)

	bankB := groups[1]
	assert.Equal(t, "B", bankB.BankName)
	assert.True(t, bankB.TotalPaid.Equal(decimal.NewFromInt(30)))
}

func TestGroupPaymentsByBank_TotalsPartitionInput(t *testing.T) {
	records := []domain.PaymentRecord{
		payment("BCB", "ESPECES", 100, 5),
		payment("IBB", "CHEQUE", 200, 0),
		payment("BCB", "ESPECES", 300, 20),
		payment("BCB", "VIREMENT", 50, 0),
		payment("IBB", "ESPECES", 75, 1),
	}

	groups := grouping.GroupPaymentsByBank(records)

	sumPaid := decimal.Zero
	leafCount := 0
	for _, bank := range groups {
		bankPaid := decimal.Zero
		for _, mode := range bank.Modes {
			itemPaid := decimal.Zero
			for _, item := range mode.Items {
				itemPaid = itemPaid.Add(item.AmountPaid)
				leafCount++
			}
			// Mode totals equal the sum of their items.
			assert.True(t, mode.TotalPaid.Equal(itemPaid))
			bankPaid = bankPaid.Add(mode.TotalPaid)
		}
		// Bank totals equal the sum of their mode totals.
		assert.True(t, bank.TotalPaid.Equal(bankPaid))
		sumPaid = sumPaid.Add(bank.TotalPaid)

		// invoiced = paid - surplus at the bank level.
		assert.True(t, bank.TotalInvoiced.Equal(bank.TotalPaid.Sub(bank.TotalSurplus)))
	}

	inputPaid := decimal.Zero
	for _, r := range records {
		inputPaid = inputPaid.Add(r.AmountPaid)
	}
	assert.True(t, sumPaid.Equal(inputPaid), "group totals partition the input sum")
	assert.Equal(t, len(records), leafCount, "every record lands in exactly one leaf")
}

func TestGroupPaymentsByBank_FirstSeenOrder(t *testing.T) {
	records := []domain.PaymentRecord{
		payment("Z", "CHEQUE", 10, 0),
		payment("A", "ESPECES", 20, 0),
		payment("Z", "ESPECES", 30, 0),
	}

	groups := grouping.GroupPaymentsByBank(records)
	require.Len(t, groups, 2)
	assert.Equal(t, "Z", groups[0].BankName, "order follows first occurrence, not lexical order")
	assert.Equal(t, "A", groups[1].BankName)
}

func TestGroupPaymentsByBank_Deterministic(t *testing.T) {
	records := []domain.PaymentRecord{
		payment("A", "ESPECES", 100, 0),
		payment("B", "CHEQUE", 50, 10),
		payment("A", "CHEQUE", 30, 0),
	}

	first := grouping.GroupPaymentsByBank(records)
	second := grouping.GroupPaymentsByBank(records)
	assert.Equal(t, first, second, "re-running on the same input yields an identical tree")
}

func TestGroupPaymentsByBank_NoKeyNormalization(t *testing.T) {
	records := []domain.PaymentRecord{
		payment("BCB", "ESPECES", 10, 0),
		payment("bcb", "ESPECES", 20, 0),
	}

	groups := grouping.GroupPaymentsByBank(records)
	assert.Len(t, groups, 2, "differently-cased labels form distinct groups")
}

func TestGroupPaymentsByBank_MissingKeyFallback(t *testing.T) {
	records := []domain.PaymentRecord{
		payment("", "", 40, 0),
	}

	groups := grouping.GroupPaymentsByBank(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].BankName)
	assert.True(t, groups[0].TotalPaid.Equal(decimal.NewFromInt(40)))
}

func TestGroupPaymentsByBank_Empty(t *testing.T) {
	groups := grouping.GroupPaymentsByBank(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func exit(destination string, qty int64) domain.StockMovement {
	return domain.StockMovement{
		MovementType: domain.MovementExit,
		Destination:  destination,
		Quantity:     decimal.NewFromInt(qty),
	}
}

func TestGroupExitsByDestination(t *testing.T) {
	movements := []domain.StockMovement{
		exit("BUJUMBURA", 10),
		exit("GITEGA", 5),
		exit("BUJUMBURA", 7),
		{MovementType: domain.MovementEntry, Quantity: decimal.NewFromInt(99)},
	}

	groups := grouping.GroupExitsByDestination(movements)
	require.Len(t, groups, 2)
	assert.Equal(t, "BUJUMBURA", groups[0].Destination)
	assert.True(t, groups[0].TotalQuantity.Equal(decimal.NewFromInt(17)))
	assert.Len(t, groups[0].Items, 2)
	assert.True(t, groups[1].TotalQuantity.Equal(decimal.NewFromInt(5)))
}

func TestBuildStockLedger(t *testing.T) {
	movements := []domain.StockMovement{
		{MovementType: domain.MovementEntry, Quantity: decimal.NewFromInt(100), Reference: "BE-1"},
		{MovementType: domain.MovementExit, Quantity: decimal.NewFromInt(30), Reference: "BS-1"},
		{MovementType: domain.MovementExit, Quantity: decimal.NewFromInt(20), Reference: "BS-2"},
	}

	ledger := grouping.BuildStockLedger("ART-1", decimal.NewFromInt(10), movements)

	require.Len(t, ledger.Rows, 3)
	assert.True(t, ledger.Rows[0].Balance.Equal(decimal.NewFromInt(110)))
	assert.True(t, ledger.Rows[1].Balance.Equal(decimal.NewFromInt(80)))
	assert.True(t, ledger.Rows[2].Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, ledger.ClosingBalance.Equal(decimal.NewFromInt(60)))
}

func TestBuildStockLedger_InventoryReplacesBalance(t *testing.T) {
	movements := []domain.StockMovement{
		{MovementType: domain.MovementEntry, Quantity: decimal.NewFromInt(50)},
		{MovementType: domain.MovementInventory, Quantity: decimal.NewFromInt(45)},
	}

	ledger := grouping.BuildStockLedger("ART-1", decimal.Zero, movements)

	require.Len(t, ledger.Rows, 2)
	assert.True(t, ledger.Rows[1].Balance.Equal(decimal.NewFromInt(45)))
	assert.True(t, ledger.Rows[1].ExitQty.Equal(decimal.NewFromInt(5)), "count below book records the shrink")
	assert.True(t, ledger.ClosingBalance.Equal(decimal.NewFromInt(45)))
}
