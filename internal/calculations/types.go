package calculations

import (
	"github.com/shopspring/decimal"
)

// Convention определяет схему погашения кредита
type Convention string

const (
	// Annuity аннуитетная схема: одинаковый ежемесячный платеж
	Annuity Convention = "annuity"
	// Differential дифференцированная схема: одинаковая доля основного долга
	Differential Convention = "differential"
)

// DefaultAnnualRatePercent годовая ставка по умолчанию, %
const DefaultAnnualRatePercent = 56.0

// internalPrecision число знаков после запятой во внутренних расчетах
const internalPrecision = 20

// InstallmentRow представляет один месяц графика платежей.
// Суммы хранятся в полной точности, округление выполняется при отображении.
type InstallmentRow struct {
	Period           int             `json:"period"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	Payment          decimal.Decimal `json:"payment"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// Schedule представляет график платежей одной схемы
type Schedule struct {
	Convention        Convention       `json:"convention"`
	Principal         decimal.Decimal  `json:"principal"`
	AnnualRatePercent decimal.Decimal  `json:"annual_rate_percent"`
	TermMonths        int              `json:"term_months"`
	Rows              []InstallmentRow `json:"rows"`
}

// ScheduleSummary итоги по графику; всегда вычисляется из Schedule
type ScheduleSummary struct {
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
}

// ComparisonResult представляет результат сравнения схем
type ComparisonResult struct {
	Annuity             *Schedule       `json:"annuity"`
	Differential        *Schedule       `json:"differential"`
	AnnuitySummary      ScheduleSummary `json:"annuity_summary"`
	DifferentialSummary ScheduleSummary `json:"differential_summary"`
	CheaperConvention   Convention      `json:"cheaper_convention,omitempty"`
	Savings             decimal.Decimal `json:"savings"`
}
