package calculations

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AnnuityPayment рассчитывает ежемесячный аннуитетный платеж
// P * r * (1+r)^n / ((1+r)^n - 1). При нулевой ставке возвращает ErrDegenerateRate.
func AnnuityPayment(principal, monthlyRate decimal.Decimal, months int) (decimal.Decimal, error) {
	if monthlyRate.IsZero() {
		return decimal.Zero, ErrDegenerateRate
	}
	base := decimal.NewFromInt(1).Add(monthlyRate)
	factor := decimal.NewFromInt(1)
	for i := 0; i < months; i++ {
		factor = factor.Mul(base).Round(internalPrecision)
	}
	numerator := principal.Mul(monthlyRate).Mul(factor)
	return numerator.DivRound(factor.Sub(decimal.NewFromInt(1)), internalPrecision), nil
}

// AnnuitySchedule рассчитывает график аннуитетного кредита
func AnnuitySchedule(principal float64, months int, annualRatePercent float64) (*Schedule, error) {
	P, rate, err := prepareInputs(principal, months, annualRatePercent)
	if err != nil {
		return nil, err
	}
	r := MonthlyRate(rate)
	n := decimal.NewFromInt(int64(months))

	monthlyPayment, err := AnnuityPayment(P, r, months)
	if errors.Is(err, ErrDegenerateRate) {
		monthlyPayment = P.DivRound(n, internalPrecision)
	} else if err != nil {
		return nil, err
	}

	rows := make([]InstallmentRow, 0, months)
	remaining := P

	for m := 1; m <= months; m++ {
		interest := remaining.Mul(r).Round(internalPrecision)
		principalComponent := monthlyPayment.Sub(interest)

		// Последний месяц закрывает остаток целиком
		if m == months {
			principalComponent = remaining
		}

		remaining = remaining.Sub(principalComponent)
		if m < months && remaining.IsNegative() {
			return nil, &NegativeBalanceError{Convention: Annuity, Period: m, Balance: remaining}
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
		Convention:        Annuity,
		Principal:         P,
		AnnualRatePercent: rate,
		TermMonths:        months,
		Rows:              rows,
	}, nil
}
