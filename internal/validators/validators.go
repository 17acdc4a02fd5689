package validators

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloud-ru/kredit-schedule-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// Limits задает допустимые границы входных данных
type Limits struct {
	MinPrincipal float64
	MaxPrincipal float64
	MinMonths    int
	MaxMonths    int
	MaxRate      float64
}

// DefaultLimits границы по умолчанию: сумма 3 000 000 – 300 000 000, срок 3–48 месяцев
var DefaultLimits = Limits{
	MinPrincipal: 3_000_000,
	MaxPrincipal: 300_000_000,
	MinMonths:    3,
	MaxMonths:    48,
	MaxRate:      200,
}

const (
	// maxAmountLength ограничивает длину введенной суммы после удаления разделителей
	maxAmountLength = 64
	// maxAmountDigits число цифр целой части, выше которого сумма заведомо вне диапазона
	maxAmountDigits = 15
	// maxAmountScale число знаков после запятой, ниже которого сумма заведомо вне диапазона
	maxAmountScale = 20
	// maxEchoLength сколько символов ввода попадает в текст ошибки
	maxEchoLength = 32
)

var (
	errEmptyInput = errors.New("empty input")
	errTooLong    = errors.New("input too long")
)

// amountSeparators удаляются из суммы перед разбором
var amountSeparators = strings.NewReplacer(
	" ", "",
	"\t", "",
	"\u00a0", "",
	"\u202f", "",
	"_", "",
	",", "",
)

// ParseAmount разбирает сумму, введенную с пробелами или разделителями разрядов
func ParseAmount(field, text string) (decimal.Decimal, error) {
	cleaned := amountSeparators.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return decimal.Zero, &ParseError{Field: field, Input: text, Err: errEmptyInput}
	}
	if len(cleaned) > maxAmountLength {
		return decimal.Zero, &ParseError{Field: field, Input: truncate(text), Err: errTooLong}
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &ParseError{Field: field, Input: truncate(text), Err: err}
	}
	return value, nil
}

// ParseTerm разбирает срок в месяцах как целое число
func ParseTerm(field, text string) (int, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0, &ParseError{Field: field, Input: text, Err: errEmptyInput}
	}
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &ParseError{Field: field, Input: truncate(text), Err: err}
	}
	return value, nil
}

// ValidatePositiveNumber проверяет, что число конечно и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) || value < minInclusive || value > maxInclusive {
		return &RangeError{
			Field: name,
			Value: strconv.FormatFloat(value, 'f', -1, 64),
			Min:   minInclusive,
			Max:   maxInclusive,
		}
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return &RangeError{
			Field: name,
			Value: strconv.Itoa(value),
			Min:   float64(minInclusive),
			Max:   float64(maxInclusive),
		}
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита.
// Порядок величины проверяется до сравнения, которое выравнивает экспоненты.
func CheckPrincipal(limits Limits, principal decimal.Decimal) error {
	if outOfScale(principal) ||
		principal.LessThan(decimal.NewFromFloat(limits.MinPrincipal)) ||
		principal.GreaterThan(decimal.NewFromFloat(limits.MaxPrincipal)) {
		return &RangeError{
			Field: "principal",
			Value: amountText(principal),
			Min:   limits.MinPrincipal,
			Max:   limits.MaxPrincipal,
		}
	}
	return nil
}

// CheckRate проверяет процентную ставку
func CheckRate(limits Limits, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, limits.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(limits Limits, months int) error {
	return ValidateIntRange("term_months", months, limits.MinMonths, limits.MaxMonths)
}

// outOfScale сообщает, что у суммы слишком много цифр до или после запятой
func outOfScale(v decimal.Decimal) bool {
	if v.IsZero() {
		return false
	}
	return coefficientDigits(v)+int(v.Exponent()) > maxAmountDigits || v.Exponent() < -maxAmountScale
}

func coefficientDigits(v decimal.Decimal) int {
	return len(strings.TrimPrefix(v.Coefficient().String(), "-"))
}

// amountText печатает сумму, не раскрывая большие экспоненты
func amountText(v decimal.Decimal) string {
	if outOfScale(v) {
		return truncate(fmt.Sprintf("%se%d", v.Coefficient().String(), v.Exponent()))
	}
	return v.String()
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxEchoLength {
		return s
	}
	return string(runes[:maxEchoLength]) + "..."
}
