package scoring

import (
	"math"
	"sort"

	"finbridge/internal/models"
)

type LoanRecommendation struct {
	ProductID        string  `json:"id"`
	LenderName       string  `json:"lender_name"`
	MinAmount        float64 `json:"min_amount"`
	MaxAmount        float64 `json:"max_amount"`
	InterestRate     float64 `json:"interest_rate"`
	MinTenure        int     `json:"min_tenure"`
	MaxTenure        int     `json:"max_tenure"`
	EMI              float64 `json:"emi"`
	TotalInterest    float64 `json:"total_interest"`
	TotalPayable     float64 `json:"total_payable"`
	EMIToIncomeRatio float64 `json:"emi_to_income_ratio"`
	RiskNote         string  `json:"risk_note"`
}

// EMI computes the fixed monthly payment amortizing principal over
// tenureMonths at the given annual percentage rate. A zero rate is an
// interest-free loan paid back in equal parts.
func EMI(principal, annualRatePct float64, tenureMonths int) float64 {
	if tenureMonths <= 0 {
		return 0
	}
	monthlyRate := annualRatePct / 12 / 100
	if monthlyRate == 0 {
		return principal / float64(tenureMonths)
	}
	pow := math.Pow(1+monthlyRate, float64(tenureMonths))
	return principal * monthlyRate * pow / (pow - 1)
}

// MatchLoans filters the catalog by the product constraints and computes
// amortization figures for each surviving product, cheapest rate first.
// An empty result means no product matched, not a failure.
func MatchLoans(
	summary CashflowSummary,
	health HealthResult,
	requestedAmount float64,
	tenure int,
	products []models.LoanProduct,
) []LoanRecommendation {
	avgIncome := summary.AvgMonthlyIncome

	recommendations := make([]LoanRecommendation, 0)
	for _, p := range products {
		if requestedAmount < p.MinAmount || requestedAmount > p.MaxAmount {
			continue
		}
		if tenure < p.MinTenure || tenure > p.MaxTenure {
			continue
		}
		if avgIncome < p.MinIncome {
			continue
		}
		if DebtToIncome > p.MaxDebtRatio {
			continue
		}
		if health.Score < p.MinHealthScore {
			continue
		}

		emi := EMI(requestedAmount, p.InterestRate, tenure)
		totalPayable := emi * float64(tenure)
		totalInterest := totalPayable - requestedAmount

		emiToIncome := 100.0
		if avgIncome > 0 {
			emiToIncome = emi / avgIncome * 100
		}

		riskNote := "Comfortable EMI"
		switch {
		case emiToIncome > 40:
			riskNote = "High EMI burden"
		case emiToIncome > 30:
			riskNote = "Moderate burden"
		}

		recommendations = append(recommendations, LoanRecommendation{
			ProductID:        p.ID.String(),
			LenderName:       p.LenderName,
			MinAmount:        p.MinAmount,
			MaxAmount:        p.MaxAmount,
			InterestRate:     p.InterestRate,
			MinTenure:        p.MinTenure,
			MaxTenure:        p.MaxTenure,
			EMI:              math.Round(emi),
			TotalInterest:    math.Round(totalInterest),
			TotalPayable:     math.Round(totalPayable),
			EMIToIncomeRatio: math.Round(emiToIncome),
			RiskNote:         riskNote,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].InterestRate < recommendations[j].InterestRate
	})

	return recommendations
}
