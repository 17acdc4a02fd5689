package calculations

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifferentialSchedule(t *testing.T) {
	result, err := DifferentialSchedule(10_000_000, 12, DefaultAnnualRatePercent)
	if err != nil {
		t.Fatalf("DifferentialSchedule() error = %v", err)
	}

	if len(result.Rows) != 12 {
		t.Errorf("expected 12 months, got %d", len(result.Rows))
	}

	// Платежи убывают от месяца к месяцу
	for i := 1; i < len(result.Rows); i++ {
		if !result.Rows[i].Payment.LessThan(result.Rows[i-1].Payment) {
			t.Errorf("payment at period %d (%s) is not below previous (%s)",
				i+1, result.Rows[i].Payment, result.Rows[i-1].Payment)
		}
	}

	assert.Equal(t, "1300000", result.FirstPayment().Round(0).String())
	assert.Equal(t, "872222", result.LastPayment().Round(0).String())

	// Проверяем, что остаток в последнем месяце равен 0
	lastMonth := result.Rows[len(result.Rows)-1]
	if !lastMonth.RemainingBalance.IsZero() {
		t.Errorf("expected remaining principal 0, got %s", lastMonth.RemainingBalance)
	}
}

func TestDifferentialScheduleZeroRate(t *testing.T) {
	result, err := DifferentialSchedule(12_000_000, 12, 0)
	require.NoError(t, err)

	for _, row := range result.Rows {
		assert.True(t, row.Interest.IsZero())
		assert.True(t, row.Payment.Equal(decimal.NewFromInt(1_000_000)), "payment %s", row.Payment)
	}
}
