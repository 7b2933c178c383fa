package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbridge/internal/models"
)

// monthsOf builds n months of identical income/expense pairs.
func monthsOf(n int, income, expenses float64) []models.Transaction {
	var txs []models.Transaction
	for i := 0; i < n; i++ {
		date := fmt.Sprintf("2024-%02d-10", i+1)
		txs = append(txs,
			tx(date, income, models.TransactionIncome),
			tx(date, expenses, models.TransactionExpense),
		)
	}
	return txs
}

func TestScoreEligibility_EmptyHistory(t *testing.T) {
	result := ScoreEligibility(BuildCashflowSummary(nil))

	// base 50, no income bonus, +10 stability, -15 expense ratio, +0 consistency
	assert.Equal(t, 45, result.Score)
	assert.Equal(t, RiskHigh, result.RiskLevel)
	require.Len(t, result.Factors, 4)
	assert.Equal(t, "Needs Improvement", result.Factors[0].Impact)
	assert.Equal(t, "Moderate", result.Factors[1].Impact)
	assert.Equal(t, "High", result.Factors[2].Impact)
	assert.Equal(t, "Variable", result.Factors[3].Impact)
}

func TestScoreEligibility_TwoMonthProfile(t *testing.T) {
	summary := BuildCashflowSummary(monthsOf(2, 42500, 11000))
	result := ScoreEligibility(summary)

	// 50 +10 income +10 stability -5 expenses +15 consistency
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, RiskLow, result.RiskLevel)
	assert.Equal(t, []Factor{
		{Factor: "Average Monthly Income", Impact: "Positive"},
		{Factor: "Income Stability", Impact: "Moderate"},
		{Factor: "Expense Control", Impact: "Good"},
		{Factor: "Cashflow Consistency", Impact: "Excellent"},
	}, result.Factors)
}

func TestScoreEligibility_StabilityBonusAfterThreeMonths(t *testing.T) {
	short := ScoreEligibility(BuildCashflowSummary(monthsOf(3, 25000, 5000)))
	long := ScoreEligibility(BuildCashflowSummary(monthsOf(4, 25000, 5000)))

	// Same monthly shape; only incomeStability (0.5 vs 0.8) differs.
	assert.Equal(t, 6, long.Score-short.Score)
	assert.Equal(t, "Strong", long.Factors[1].Impact)
	assert.Equal(t, "Moderate", short.Factors[1].Impact)
}

func TestScoreEligibility_IncomeBands(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		bonus  int
	}{
		{"above 50k", 60000, 15},
		{"above 30k", 40000, 10},
		{"above 20k", 25000, 5},
		{"at or below 20k", 20000, 0},
	}

	baseline := ScoreEligibility(BuildCashflowSummary(monthsOf(6, 10000, 1000))).Score
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Expense kept at 10% so the deduction band never shifts.
			result := ScoreEligibility(BuildCashflowSummary(monthsOf(6, tt.income, tt.income/10)))
			assert.Equal(t, baseline+tt.bonus, result.Score)
		})
	}
}

func TestScoreEligibility_ExpenseRatioDeductions(t *testing.T) {
	tests := []struct {
		name     string
		expenses float64
		score    int
	}{
		// 6 months, income 10000: base 50 +0 income +16 stability +15 consistency = 81 before deduction.
		{"ratio above 0.8", 9000, 66},
		{"ratio above 0.6", 7000, 71},
		{"ratio at or below 0.6", 5000, 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreEligibility(BuildCashflowSummary(monthsOf(6, 10000, tt.expenses)))
			assert.Equal(t, tt.score, result.Score)
		})
	}
}

func TestScoreEligibility_RiskLevelFollowsScore(t *testing.T) {
	tests := []struct {
		name  string
		txs   []models.Transaction
		score int
		level RiskLevel
	}{
		{"strong profile", monthsOf(6, 10000, 5000), 76, RiskLow},
		{"tight margins", monthsOf(6, 10000, 9000), 66, RiskMedium},
		{"no history", nil, 45, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreEligibility(BuildCashflowSummary(tt.txs))
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.level, result.RiskLevel)
		})
	}
}

func TestScoreEligibility_AlwaysInRange(t *testing.T) {
	profiles := [][]models.Transaction{
		nil,
		monthsOf(1, 1, 1000000),
		monthsOf(12, 1000000, 0),
		monthsOf(6, 0, 50000),
	}

	for _, txs := range profiles {
		result := ScoreEligibility(BuildCashflowSummary(txs))
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}
