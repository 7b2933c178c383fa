package scoring

import "math"

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type Factor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
}

type EligibilityResult struct {
	Score     int       `json:"eligibility_score"`
	RiskLevel RiskLevel `json:"risk_level"`
	Factors   []Factor  `json:"factors"`
}

// ScoreEligibility turns a cashflow summary into a 0-100 loan eligibility
// score with a risk level and qualitative factor explanations. With no
// transaction history the formula lands on 45 (base 50, +10 for the low
// stability band, -15 for the 100% expense ratio).
func ScoreEligibility(summary CashflowSummary) EligibilityResult {
	avgIncome := summary.AvgMonthlyIncome

	incomeStability := 0.5
	if len(summary.MonthlyData) > 3 {
		incomeStability = 0.8
	}

	expenseRatio := 1.0
	if avgIncome > 0 {
		expenseRatio = summary.AvgMonthlyExpenses / avgIncome
	}

	cashflowConsistency := positiveMonthRatio(summary)

	base := 50.0
	switch {
	case avgIncome > 50000:
		base += 15
	case avgIncome > 30000:
		base += 10
	case avgIncome > 20000:
		base += 5
	}

	base += incomeStability * 20

	switch {
	case expenseRatio > 0.8:
		base -= 15
	case expenseRatio > 0.6:
		base -= 10
	default:
		base -= 5
	}

	base += cashflowConsistency * 15

	score := int(math.Round(math.Min(100, math.Max(0, base))))

	riskLevel := RiskHigh
	switch {
	case score > 70:
		riskLevel = RiskLow
	case score > 50:
		riskLevel = RiskMedium
	}

	factors := []Factor{
		{Factor: "Average Monthly Income", Impact: pick(avgIncome > 30000, "Positive", "Needs Improvement")},
		{Factor: "Income Stability", Impact: pick(incomeStability > 0.7, "Strong", "Moderate")},
		{Factor: "Expense Control", Impact: pick(expenseRatio < 0.7, "Good", "High")},
		{Factor: "Cashflow Consistency", Impact: pick(cashflowConsistency > 0.7, "Excellent", "Variable")},
	}

	return EligibilityResult{Score: score, RiskLevel: riskLevel, Factors: factors}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
