package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// GroupSeparator разделяет группы по три цифры в отформатированных суммах
const GroupSeparator = " "

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FormatAmount округляет сумму до целого и разбивает цифры на группы по три
func FormatAmount(amount float64) string {
	if !IsFinite(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return FormatDecimal(decimal.NewFromFloat(amount))
}

// FormatDecimal то же, что FormatAmount, для значений decimal.Decimal
func FormatDecimal(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := groupDigits(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + digits
	}
	return digits
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(GroupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
