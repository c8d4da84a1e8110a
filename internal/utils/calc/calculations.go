package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

// VATRate is the fixed tax rate applied to surplus (excédent) receipts.
var VATRate = decimal.NewFromFloat(0.18)

// VATSplit decomposes a tax-inclusive gross amount into the tax-exclusive
// amount and the VAT share at the given rate.
//
//	gross = net + net*rate  =>  net = gross / (1 + rate)
//
// Both results are rounded to 2 decimal places, half up. A gross amount of
// zero or less yields {0, 0}.
func VATSplit(gross decimal.Decimal, rate decimal.Decimal) (net, vat decimal.Decimal) {
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}
	one := decimal.NewFromInt(1)
	net = gross.Div(one.Add(rate)).Round(2)
	vat = gross.Sub(net).Round(2)
	return net, vat
}

// NetWeight returns the weighbridge net weight: the absolute difference of
// the two weighings. Order-agnostic since the loaded pass may come first or
// second.
func NetWeight(firstWeight, secondWeight decimal.Decimal) decimal.Decimal {
	return firstWeight.Sub(secondWeight).Abs()
}

// AbsenceEndDate computes the inclusive end date of an absence: a 1-day
// absence starts and ends on the same day. A zero start date or a
// non-positive day count yields a zero time and false.
func AbsenceEndDate(startDate time.Time, days int) (time.Time, bool) {
	if startDate.IsZero() || days <= 0 {
		return time.Time{}, false
	}
	return startDate.AddDate(0, 0, days-1), true
}

// ParseFrenchDate parses the dd/mm/yyyy format used by the legacy forms.
func ParseFrenchDate(value string) (time.Time, error) {
	return time.Parse("02/01/2006", value)
}

// FormatFrenchDate renders a date in the dd/mm/yyyy format used by the
// legacy forms.
func FormatFrenchDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// ConsumptionStats derives the meter difference, tonnage ratio and
// consumption per hour from the start/end meter readings and tonnage.
// This is the closed-form derivation: ratio = tonnage / diff and the
// consumption is computed from that same ratio.
func ConsumptionStats(indexStart, indexEnd, tonnage decimal.Decimal) (diff, ratio, consumptionPerHour decimal.Decimal) {
	diff = indexEnd.Sub(indexStart)
	if diff.LessThanOrEqual(decimal.Zero) {
		return diff, decimal.Zero, decimal.Zero
	}
	if tonnage.IsPositive() {
		ratio = tonnage.Div(diff)
	}
	if ratio.IsPositive() {
		consumptionPerHour = diff.Div(ratio)
	}
	return diff, ratio, consumptionPerHour
}

// ConsumptionStatsLagged mirrors the legacy screen behavior where the
// consumption per hour is computed from the ratio of the previous refresh,
// one tick behind the current readings.
func ConsumptionStatsLagged(indexStart, indexEnd, tonnage, prevRatio decimal.Decimal) (diff, ratio, consumptionPerHour decimal.Decimal) {
	diff = indexEnd.Sub(indexStart)
	if prevRatio.IsPositive() {
		consumptionPerHour = diff.Div(prevRatio)
	}
	if tonnage.IsPositive() && diff.IsPositive() {
		ratio = tonnage.Div(diff)
	} else {
		ratio = decimal.Zero
	}
	return diff, ratio, consumptionPerHour
}

// standardWorkDay is the contractual day length used for overtime.
var standardWorkDay = decimal.NewFromInt(8)

// WorkedHours returns the hours between clock-in and clock-out, rounded to
// 2 decimals. Clock-out before clock-in yields zero.
func WorkedHours(clockIn, clockOut time.Time) decimal.Decimal {
	if clockOut.Before(clockIn) {
		return decimal.Zero
	}
	minutes := clockOut.Sub(clockIn).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}

// OvertimeHours returns the hours worked beyond the standard day, never
// negative.
func OvertimeHours(workedHours decimal.Decimal) decimal.Decimal {
	overtime := workedHours.Sub(standardWorkDay)
	if overtime.IsNegative() {
		return decimal.Zero
	}
	return overtime
}
