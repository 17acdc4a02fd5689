package calculations

import (
	"github.com/shopspring/decimal"
)

// DifferentialSchedule рассчитывает график дифференцированного кредита
func DifferentialSchedule(principal float64, months int, annualRatePercent float64) (*Schedule, error) {
	P, rate, err := prepareInputs(principal, months, annualRatePercent)
	if err != nil {
		return nil, err
	}
	r := MonthlyRate(rate)

	principalComponentRaw := P.DivRound(decimal.NewFromInt(int64(months)), internalPrecision)
	remaining := P
	rows := make([]InstallmentRow, 0, months)

	for m := 1; m <= months; m++ {
		interest := remaining.Mul(r).Round(internalPrecision)
		principalComponent := principalComponentRaw
		if m == months {
			principalComponent = remaining
		}

		remaining = remaining.Sub(principalComponent)
		if m < months && remaining.IsNegative() {
			return nil, &NegativeBalanceError{Convention: Differential, Period: m, Balance: remaining}
		}

		rows = append(rows, InstallmentRow{
			Period:           m,
			Interest:         interest,
			Principal:        principalComponent,
			Payment:          principalComponent.Add(interest),
			RemainingBalance: clampBalance(remaining),
		})
	}

	return &Schedule{
		Convention:        Differential,
		Principal:         P,
		AnnualRatePercent: rate,
		TermMonths:        months,
		Rows:              rows,
	}, nil
}
