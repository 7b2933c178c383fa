package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finbridge/internal/models"
)

func TestScoreHealth_EmptyHistory(t *testing.T) {
	summary := BuildCashflowSummary(nil)
	eligibility := ScoreEligibility(summary)
	health := ScoreHealth(summary, eligibility)

	// 0 stability + 0 savings + 16 debt component + 45/100*25 = 27.25
	assert.Equal(t, 27, health.Score)
	assert.Equal(t, "At Risk", health.Category)
	assert.Equal(t, HealthBreakdown{
		CashflowStability: 0,
		SavingsRate:       0,
		DebtRatio:         20,
		Eligibility:       45,
	}, health.Breakdown)
}

func TestScoreHealth_TwoMonthProfile(t *testing.T) {
	summary := BuildCashflowSummary(monthsOf(2, 42500, 11000))
	eligibility := ScoreEligibility(summary)
	health := ScoreHealth(summary, eligibility)

	// 30 stability + 18.53 savings + 16 debt + 20 eligibility = 84.53
	assert.Equal(t, 85, health.Score)
	assert.Equal(t, "Healthy", health.Category)
	assert.Equal(t, 100, health.Breakdown.CashflowStability)
	assert.Equal(t, 74, health.Breakdown.SavingsRate)
	assert.Equal(t, 20, health.Breakdown.DebtRatio)
	assert.Equal(t, 80, health.Breakdown.Eligibility)
}

func TestScoreHealth_Categories(t *testing.T) {
	tests := []struct {
		name     string
		summary  CashflowSummary
		category string
	}{
		{
			name:     "healthy",
			summary:  BuildCashflowSummary(monthsOf(6, 50000, 10000)),
			category: "Healthy",
		},
		{
			name: "half the months underwater",
			summary: BuildCashflowSummary([]models.Transaction{
				tx("2024-01-05", 30000, models.TransactionIncome),
				tx("2024-01-20", 10000, models.TransactionExpense),
				tx("2024-02-05", 10000, models.TransactionIncome),
				tx("2024-02-20", 30000, models.TransactionExpense),
			}),
			category: "Needs Improvement",
		},
		{
			name:     "empty",
			summary:  BuildCashflowSummary(nil),
			category: "At Risk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elig := ScoreEligibility(tt.summary)
			health := ScoreHealth(tt.summary, elig)
			assert.Equal(t, tt.category, health.Category)
		})
	}
}

func TestScoreHealth_AlwaysInRange(t *testing.T) {
	summaries := []CashflowSummary{
		BuildCashflowSummary(nil),
		BuildCashflowSummary(monthsOf(12, 1000000, 0)),
		BuildCashflowSummary(monthsOf(1, 0, 100000)),
	}

	for _, summary := range summaries {
		health := ScoreHealth(summary, ScoreEligibility(summary))
		assert.GreaterOrEqual(t, health.Score, 0)
		assert.LessOrEqual(t, health.Score, 100)
	}
}
