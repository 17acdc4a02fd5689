package calculations

import (
	"github.com/shopspring/decimal"
)

// Summarize суммирует проценты и платежи по графику в полной точности
func Summarize(schedule *Schedule) ScheduleSummary {
	summary := ScheduleSummary{
		TotalInterest: decimal.Zero,
		TotalPayment:  decimal.Zero,
	}
	if schedule == nil {
		return summary
	}
	for _, row := range schedule.Rows {
		summary.TotalInterest = summary.TotalInterest.Add(row.Interest)
		summary.TotalPayment = summary.TotalPayment.Add(row.Payment)
	}
	return summary
}

// Rounded возвращает итоги, округленные до целой единицы для отображения
func (s ScheduleSummary) Rounded() ScheduleSummary {
	return ScheduleSummary{
		TotalInterest: s.TotalInterest.Round(0),
		TotalPayment:  s.TotalPayment.Round(0),
	}
}

// FirstPayment возвращает платеж первого месяца
func (s *Schedule) FirstPayment() decimal.Decimal {
	if len(s.Rows) == 0 {
		return decimal.Zero
	}
	return s.Rows[0].Payment
}

// LastPayment возвращает платеж последнего месяца
func (s *Schedule) LastPayment() decimal.Decimal {
	if len(s.Rows) == 0 {
		return decimal.Zero
	}
	return s.Rows[len(s.Rows)-1].Payment
}

// TotalPrincipal возвращает сумму погашенного основного долга
func (s *Schedule) TotalPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s.Rows {
		total = total.Add(row.Principal)
	}
	return total
}
