package calculations

import (
	"github.com/cloud-ru/kredit-schedule-go/pkg/utils"
	"github.com/shopspring/decimal"
)

var monthsPerYearPercent = decimal.NewFromInt(12 * 100)

// prepareInputs проверяет аргументы генератора и переводит их в decimal
func prepareInputs(principal float64, months int, annualRatePercent float64) (decimal.Decimal, decimal.Decimal, error) {
	if !utils.IsFinite(principal) || principal <= 0 {
		return decimal.Zero, decimal.Zero, &InputError{Field: "principal", Reason: "must be a positive finite number"}
	}
	if months < 1 {
		return decimal.Zero, decimal.Zero, &InputError{Field: "term_months", Reason: "must be at least 1"}
	}
	if !utils.IsFinite(annualRatePercent) || annualRatePercent < 0 {
		return decimal.Zero, decimal.Zero, &InputError{Field: "annual_rate_percent", Reason: "must be a non-negative finite number"}
	}
	return decimal.NewFromFloat(principal), decimal.NewFromFloat(annualRatePercent), nil
}

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.DivRound(monthsPerYearPercent, internalPrecision)
}

// clampBalance не дает отображаемому остатку уйти ниже нуля
func clampBalance(balance decimal.Decimal) decimal.Decimal {
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
