package calc_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrm/agrm_backend/internal/utils/calc"
)

func TestVATSplit(t *testing.T) {
	net, vat := calc.VATSplit(decimal.NewFromInt(118), calc.VATRate)
	assert.True(t, net.Equal(decimal.NewFromInt(100)), "net = %s", net)
	assert.True(t, vat.Equal(decimal.NewFromInt(18)), "vat = %s", vat)
}

func TestVATSplit_NonPositiveGross(t *testing.T) {
	for _, gross := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		net, vat := calc.VATSplit(gross, calc.VATRate)
		assert.True(t, net.IsZero())
		assert.True(t, vat.IsZero())
	}
}

func TestVATSplit_SumsBackToGross(t *testing.T) {
	epsilon := decimal.NewFromFloat(0.01)
	for _, amount := range []float64{1, 99.99, 118, 1234.56, 1000000} {
		gross := decimal.NewFromFloat(amount)
		net, vat := calc.VATSplit(gross, calc.VATRate)
		diff := net.Add(vat).Sub(gross).Abs()
		assert.True(t, diff.LessThanOrEqual(epsilon), "gross=%s net=%s vat=%s", gross, net, vat)
	}
}

func TestNetWeight(t *testing.T) {
	in := decimal.NewFromInt(5000)
	out := decimal.NewFromInt(3200)
	assert.True(t, calc.NetWeight(in, out).Equal(decimal.NewFromInt(1800)))
}

func TestNetWeight_Commutative(t *testing.T) {
	a := decimal.NewFromFloat(1234.5)
	b := decimal.NewFromFloat(987.25)
	assert.True(t, calc.NetWeight(a, b).Equal(calc.NetWeight(b, a)))
}

func TestAbsenceEndDate(t *testing.T) {
	start, err := calc.ParseFrenchDate("01/03/2024")
	require.NoError(t, err)

	end, ok := calc.AbsenceEndDate(start, 5)
	require.True(t, ok)
	assert.Equal(t, "05/03/2024", calc.FormatFrenchDate(end))
}

func TestAbsenceEndDate_OneDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end, ok := calc.AbsenceEndDate(start, 1)
	require.True(t, ok)
	assert.True(t, end.Equal(start), "a 1-day absence ends the day it starts")
}

func TestAbsenceEndDate_StrictlyIncreasing(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	prev := start
	for days := 2; days <= 10; days++ {
		end, ok := calc.AbsenceEndDate(start, days)
		require.True(t, ok)
		assert.True(t, end.After(prev), "days=%d", days)
		prev = end
	}
}

func TestAbsenceEndDate_Invalid(t *testing.T) {
	_, ok := calc.AbsenceEndDate(time.Time{}, 5)
	assert.False(t, ok, "zero start date")

	_, ok = calc.AbsenceEndDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	assert.False(t, ok, "non-positive day count")
}

func TestConsumptionStats(t *testing.T) {
	diff, ratio, consumption := calc.ConsumptionStats(
		decimal.NewFromInt(1000), decimal.NewFromInt(1100), decimal.NewFromInt(500))

	assert.True(t, diff.Equal(decimal.NewFromInt(100)))
	assert.True(t, ratio.Equal(decimal.NewFromInt(5)), "ratio = tonnage / diff")
	assert.True(t, consumption.Equal(decimal.NewFromInt(20)), "consumption = diff / ratio")
}

func TestConsumptionStats_NoProgress(t *testing.T) {
	diff, ratio, consumption := calc.ConsumptionStats(
		decimal.NewFromInt(1100), decimal.NewFromInt(1000), decimal.NewFromInt(500))

	assert.True(t, diff.IsNegative())
	assert.True(t, ratio.IsZero())
	assert.True(t, consumption.IsZero())
}

func TestConsumptionStatsLagged_UsesPreviousRatio(t *testing.T) {
	prevRatio := decimal.NewFromInt(4)
	diff, ratio, consumption := calc.ConsumptionStatsLagged(
		decimal.NewFromInt(1000), decimal.NewFromInt(1100), decimal.NewFromInt(500), prevRatio)

	assert.True(t, diff.Equal(decimal.NewFromInt(100)))
	// Consumption comes from the stale ratio, not the one derived this tick.
	assert.True(t, consumption.Equal(decimal.NewFromInt(25)))
	assert.True(t, ratio.Equal(decimal.NewFromInt(5)))
}

func TestWorkedHours(t *testing.T) {
	in := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC)

	worked := calc.WorkedHours(in, out)
	assert.True(t, worked.Equal(decimal.NewFromFloat(9.5)))
	assert.True(t, calc.OvertimeHours(worked).Equal(decimal.NewFromFloat(1.5)))
}

func TestWorkedHours_ClockOutBeforeClockIn(t *testing.T) {
	in := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.True(t, calc.WorkedHours(in, out).IsZero())
}

func TestOvertimeHours_NeverNegative(t *testing.T) {
	assert.True(t, calc.OvertimeHours(decimal.NewFromInt(6)).IsZero())
}
