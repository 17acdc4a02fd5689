package validators

import (
	"fmt"

	"github.com/cloud-ru/kredit-schedule-go/pkg/utils"
)

// ParseError введенный текст не является числом
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q не является числом", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError значение вне допустимого диапазона; границы включаются
type RangeError struct {
	Field string
	Value string
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: значение %s должно быть в диапазоне [%s; %s]",
		e.Field, e.Value, utils.FormatAmount(e.Min), utils.FormatAmount(e.Max))
}
