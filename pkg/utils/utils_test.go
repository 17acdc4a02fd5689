package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{
			name:  "finite number",
			input: 123.45,
			want:  true,
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			want:  false,
		},
		{
			name:  "negative infinity",
			input: math.Inf(-1),
			want:  false,
		},
		{
			name:  "NaN",
			input: math.NaN(),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFinite(tt.input)
			if got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "below thousand", input: 999, want: "999"},
		{name: "exact thousand", input: 1000, want: "1 000"},
		{name: "millions", input: 1234567, want: "1 234 567"},
		{name: "rounds down", input: 1234567.49, want: "1 234 567"},
		{name: "rounds half up", input: 1234567.5, want: "1 234 568"},
		{name: "zero", input: 0, want: "0"},
		{name: "tiny negative rounds to zero", input: -0.3, want: "0"},
		{name: "negative", input: -1234567, want: "-1 234 567"},
		{name: "hundreds of millions", input: 300000000, want: "300 000 000"},
		{name: "NaN", input: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.input); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	got := FormatDecimal(decimal.RequireFromString("1107142.6914582811"))
	if got != "1 107 143" {
		t.Errorf("FormatDecimal() = %q, want %q", got, "1 107 143")
	}
}
