package calculations

// CompareLoans рассчитывает обе схемы и определяет, какая выгоднее
func CompareLoans(principal float64, months int, annualRatePercent float64) (*ComparisonResult, error) {
	annuity, err := AnnuitySchedule(principal, months, annualRatePercent)
	if err != nil {
		return nil, err
	}

	differential, err := DifferentialSchedule(principal, months, annualRatePercent)
	if err != nil {
		return nil, err
	}

	annuitySummary := Summarize(annuity)
	differentialSummary := Summarize(differential)

	result := &ComparisonResult{
		Annuity:             annuity,
		Differential:        differential,
		AnnuitySummary:      annuitySummary,
		DifferentialSummary: differentialSummary,
	}

	// Разница меньше единицы считается равенством
	diff := annuitySummary.TotalPayment.Sub(differentialSummary.TotalPayment).Round(0)
	switch {
	case diff.IsPositive():
		result.CheaperConvention = Differential
		result.Savings = diff
	case diff.IsNegative():
		result.CheaperConvention = Annuity
		result.Savings = diff.Neg()
	default:
		result.Savings = diff
	}

	return result, nil
}
