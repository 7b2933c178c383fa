package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbridge/internal/models"
)

// catalog mirrors the seeded demo products.
func catalog() []models.LoanProduct {
	return []models.LoanProduct{
		{ID: uuid.New(), LenderName: "MicroFin Bank", MinAmount: 50000, MaxAmount: 500000, InterestRate: 12.5, MinTenure: 12, MaxTenure: 60, MinIncome: 20000, MaxDebtRatio: 0.4, MinHealthScore: 50},
		{ID: uuid.New(), LenderName: "SME Credit Union", MinAmount: 100000, MaxAmount: 1000000, InterestRate: 11.0, MinTenure: 24, MaxTenure: 84, MinIncome: 40000, MaxDebtRatio: 0.35, MinHealthScore: 60},
		{ID: uuid.New(), LenderName: "Business Growth NBFC", MinAmount: 25000, MaxAmount: 300000, InterestRate: 14.0, MinTenure: 6, MaxTenure: 36, MinIncome: 15000, MaxDebtRatio: 0.45, MinHealthScore: 40},
		{ID: uuid.New(), LenderName: "QuickCash Lenders", MinAmount: 10000, MaxAmount: 200000, InterestRate: 15.5, MinTenure: 6, MaxTenure: 24, MinIncome: 10000, MaxDebtRatio: 0.5, MinHealthScore: 35},
		{ID: uuid.New(), LenderName: "Prime Business Finance", MinAmount: 200000, MaxAmount: 2000000, InterestRate: 10.0, MinTenure: 36, MaxTenure: 120, MinIncome: 60000, MaxDebtRatio: 0.3, MinHealthScore: 70},
	}
}

func TestEMI(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		// 100000 at 12% p.a. over 24 months.
		emi := EMI(100000, 12, 24)
		assert.InDelta(t, 4707.35, emi, 0.5)
	})

	t.Run("zero rate pays principal in equal parts", func(t *testing.T) {
		assert.Equal(t, 5000.0, EMI(120000, 0, 24))
	})

	t.Run("non-positive tenure", func(t *testing.T) {
		assert.Zero(t, EMI(100000, 12, 0))
		assert.Zero(t, EMI(100000, 12, -5))
	})
}

func TestMatchLoans_FiltersAndRanks(t *testing.T) {
	summary := BuildCashflowSummary(monthsOf(6, 50000, 20000))
	health := ScoreHealth(summary, ScoreEligibility(summary))
	require.GreaterOrEqual(t, health.Score, 70)

	recs := MatchLoans(summary, health, 100000, 24, catalog())

	// Prime is excluded on amount; the rest qualify, cheapest rate first.
	require.Len(t, recs, 4)
	assert.Equal(t, "SME Credit Union", recs[0].LenderName)
	assert.Equal(t, "MicroFin Bank", recs[1].LenderName)
	assert.Equal(t, "Business Growth NBFC", recs[2].LenderName)
	assert.Equal(t, "QuickCash Lenders", recs[3].LenderName)

	for _, rec := range recs {
		assert.Equal(t, "Comfortable EMI", rec.RiskNote, rec.LenderName)
		assert.InDelta(t, rec.EMI*24, rec.TotalPayable, 24, rec.LenderName)
		assert.InDelta(t, rec.TotalPayable-100000, rec.TotalInterest, 24, rec.LenderName)
	}

	assert.InDelta(t, 4731, recs[1].EMI, 1)
	assert.InDelta(t, 9, recs[0].EMIToIncomeRatio, 1)
}

func TestMatchLoans_EMIBurdenNotes(t *testing.T) {
	t.Run("high burden on thin income", func(t *testing.T) {
		summary := BuildCashflowSummary(monthsOf(6, 10000, 2000))
		health := ScoreHealth(summary, ScoreEligibility(summary))

		recs := MatchLoans(summary, health, 100000, 24, catalog())

		// Only QuickCash accepts a 10000 monthly income.
		require.Len(t, recs, 1)
		assert.Equal(t, "QuickCash Lenders", recs[0].LenderName)
		assert.Equal(t, "High EMI burden", recs[0].RiskNote)
		assert.Greater(t, recs[0].EMIToIncomeRatio, 40.0)
	})

	t.Run("moderate burden", func(t *testing.T) {
		summary := BuildCashflowSummary(monthsOf(6, 15000, 3000))
		health := ScoreHealth(summary, ScoreEligibility(summary))

		recs := MatchLoans(summary, health, 100000, 24, catalog())

		require.Len(t, recs, 2)
		assert.Equal(t, "Business Growth NBFC", recs[0].LenderName)
		assert.Equal(t, "Moderate burden", recs[0].RiskNote)
		assert.Equal(t, "Moderate burden", recs[1].RiskNote)
	})
}

func TestMatchLoans_TenureBounds(t *testing.T) {
	summary := BuildCashflowSummary(monthsOf(6, 50000, 20000))
	health := ScoreHealth(summary, ScoreEligibility(summary))

	recs := MatchLoans(summary, health, 100000, 30, catalog())

	// Tenure 30 exceeds QuickCash's 24-month ceiling.
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.LenderName)
	}
	assert.Equal(t, []string{"SME Credit Union", "MicroFin Bank", "Business Growth NBFC"}, names)
}

func TestMatchLoans_NoMatchIsEmptyNotNil(t *testing.T) {
	summary := BuildCashflowSummary(nil)
	health := ScoreHealth(summary, ScoreEligibility(summary))

	recs := MatchLoans(summary, health, 5000, 3, catalog())

	require.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestMatchLoans_ZeroIncomeRatioDefaultsToHundred(t *testing.T) {
	summary := CashflowSummary{}
	health := HealthResult{Score: 100}

	recs := MatchLoans(summary, health, 100000, 24, []models.LoanProduct{
		{ID: uuid.New(), LenderName: "NoFloor Lender", MinAmount: 0, MaxAmount: 500000, InterestRate: 12, MinTenure: 1, MaxTenure: 60, MinIncome: 0, MaxDebtRatio: 1, MinHealthScore: 0},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, 100.0, recs[0].EMIToIncomeRatio)
	assert.Equal(t, "High EMI burden", recs[0].RiskNote)
}
