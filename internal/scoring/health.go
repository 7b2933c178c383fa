package scoring

import "math"

// DebtToIncome is a fixed assumption: roughly 20% of income is taken to
// service existing obligations. No real debt tracking exists; this is a
// known simplification carried through the health score and the matcher.
const DebtToIncome = 0.2

type HealthBreakdown struct {
	CashflowStability int `json:"cashflow_stability"`
	SavingsRate       int `json:"savings_rate"`
	DebtRatio         int `json:"debt_ratio"`
	Eligibility       int `json:"eligibility"`
}

type HealthResult struct {
	Score     int             `json:"health_score"`
	Category  string          `json:"category"`
	Breakdown HealthBreakdown `json:"breakdown"`
}

// ScoreHealth combines cashflow stability, savings rate, the fixed debt
// assumption and the eligibility score into a 0-100 composite.
func ScoreHealth(summary CashflowSummary, eligibility EligibilityResult) HealthResult {
	cashflowStability := positiveMonthRatio(summary)

	savingsRate := 0.0
	if summary.AvgMonthlyIncome > 0 {
		savingsRate = math.Max(0, (summary.AvgMonthlyIncome-summary.AvgMonthlyExpenses)/summary.AvgMonthlyIncome)
	}

	raw := cashflowStability*30 +
		savingsRate*25 +
		(1-DebtToIncome)*20 +
		float64(eligibility.Score)/100*25

	score := int(math.Round(math.Min(100, math.Max(0, raw))))

	category := "At Risk"
	switch {
	case score > 75:
		category = "Healthy"
	case score > 60:
		category = "Stable"
	case score > 40:
		category = "Needs Improvement"
	}

	return HealthResult{
		Score:    score,
		Category: category,
		Breakdown: HealthBreakdown{
			CashflowStability: int(math.Round(cashflowStability * 100)),
			SavingsRate:       int(math.Round(savingsRate * 100)),
			DebtRatio:         int(math.Round(DebtToIncome * 100)),
			Eligibility:       eligibility.Score,
		},
	}
}
