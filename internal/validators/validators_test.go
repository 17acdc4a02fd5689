package validators

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidators(t *testing.T) {
	limits := DefaultLimits

	tests := []struct {
		name      string
		validator func(Limits, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "principal lower bound",
			validator: func(l Limits, v interface{}) error { return CheckPrincipal(l, decimal.NewFromInt(int64(v.(int)))) },
			value:     3_000_000,
			wantError: false,
		},
		{
			name:      "principal upper bound",
			validator: func(l Limits, v interface{}) error { return CheckPrincipal(l, decimal.NewFromInt(int64(v.(int)))) },
			value:     300_000_000,
			wantError: false,
		},
		{
			name:      "principal below lower bound",
			validator: func(l Limits, v interface{}) error { return CheckPrincipal(l, decimal.NewFromInt(int64(v.(int)))) },
			value:     2_999_999,
			wantError: true,
		},
		{
			name:      "principal above upper bound",
			validator: func(l Limits, v interface{}) error { return CheckPrincipal(l, decimal.NewFromInt(int64(v.(int)))) },
			value:     300_000_001,
			wantError: true,
		},
		{
			name:      "valid rate",
			validator: func(l Limits, v interface{}) error { return CheckRate(l, v.(float64)) },
			value:     56.0,
			wantError: false,
		},
		{
			name:      "zero rate",
			validator: func(l Limits, v interface{}) error { return CheckRate(l, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(l Limits, v interface{}) error { return CheckRate(l, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "months lower bound",
			validator: func(l Limits, v interface{}) error { return CheckMonths(l, v.(int)) },
			value:     3,
			wantError: false,
		},
		{
			name:      "months upper bound",
			validator: func(l Limits, v interface{}) error { return CheckMonths(l, v.(int)) },
			value:     48,
			wantError: false,
		},
		{
			name:      "months too short",
			validator: func(l Limits, v interface{}) error { return CheckMonths(l, v.(int)) },
			value:     2,
			wantError: true,
		},
		{
			name:      "months too long",
			validator: func(l Limits, v interface{}) error { return CheckMonths(l, v.(int)) },
			value:     49,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(limits, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
			var rangeErr *RangeError
			if err != nil && !errors.As(err, &rangeErr) {
				t.Errorf("expected *RangeError, got %T", err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		wantError bool
	}{
		{input: "12000000", want: "12000000"},
		{input: " 12 000 000 ", want: "12000000"},
		{input: "12,000,000", want: "12000000"},
		{input: "12_000_000.5", want: "12000000.5"},
		{input: "12\u00a0000\u00a0000", want: "12000000"},
		{input: "1e7", want: "10000000"},
		{input: "", wantError: true},
		{input: "   ", wantError: true},
		{input: "abc", wantError: true},
		{input: "12 млн", wantError: true},
		{input: "NaN", wantError: true},
		{input: strings.Repeat("9", 100), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount("principal", tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseAmount(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if tt.wantError {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("expected *ParseError, got %T", err)
				}
				return
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTerm(t *testing.T) {
	tests := []struct {
		input     string
		want      int
		wantError bool
	}{
		{input: "12", want: 12},
		{input: " 48\n", want: 48},
		{input: "12.5", wantError: true},
		{input: "twelve", wantError: true},
		{input: "99999999999999999999999", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTerm("term_months", tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseTerm(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if !tt.wantError && got != tt.want {
				t.Errorf("ParseTerm(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := CheckPrincipal(DefaultLimits, decimal.NewFromInt(2_999_999))
	want := "principal: значение 2999999 должно быть в диапазоне [3 000 000; 300 000 000]"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestCheckPrincipalScale(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{name: "huge exponent", input: "1e10000000", value: "1e10000000"},
		{name: "huge negative exponent", input: "1e-10000000", value: "1e-10000000"},
		{name: "above fifteen digits", input: "1e16", value: "1e16"},
		{name: "long coefficient", input: "123456789e2000000000", value: "123456789e2000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			amount, err := ParseAmount("principal", tt.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.input, err)
			}

			err = CheckPrincipal(DefaultLimits, amount)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *RangeError, got %T (%v)", err, err)
			}
			if rangeErr.Value != tt.value {
				t.Errorf("Value = %q, want %q", rangeErr.Value, tt.value)
			}
			if len(err.Error()) > 128 {
				t.Errorf("error text too long: %d bytes", len(err.Error()))
			}
			if elapsed := time.Since(start); elapsed > time.Second {
				t.Errorf("check took %s", elapsed)
			}
		})
	}
}

func TestParseErrorTruncatesInput(t *testing.T) {
	_, err := ParseAmount("principal", strings.Repeat("x", 1000))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(parseErr.Input) > maxEchoLength+3 {
		t.Errorf("Input length = %d, want at most %d", len(parseErr.Input), maxEchoLength+3)
	}
}
