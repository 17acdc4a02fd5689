package calculations

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDegenerateRate возвращается, когда месячная ставка равна нулю и
// формула аннуитета не определена
var ErrDegenerateRate = errors.New("monthly rate is zero")

// InputError описывает недопустимые аргументы генератора графика
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NegativeBalanceError сигнализирует об ошибке вычисления: остаток стал
// отрицательным раньше последнего месяца
type NegativeBalanceError struct {
	Convention Convention
	Period     int
	Balance    decimal.Decimal
}

func (e *NegativeBalanceError) Error() string {
	return fmt.Sprintf("%s schedule: balance became negative (%s) at period %d",
		e.Convention, e.Balance.StringFixed(2), e.Period)
}
