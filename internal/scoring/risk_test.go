package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbridge/internal/models"
)

func riskTx(daysAgo int, amount float64, txType models.TransactionType, now time.Time) models.Transaction {
	return models.Transaction{
		Date:   now.AddDate(0, 0, -daysAgo),
		Amount: amount,
		Type:   txType,
	}
}

func TestAnalyzeRisk_NoIndicators(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		riskTx(20, 30000, models.TransactionIncome, now),
		riskTx(15, 8000, models.TransactionExpense, now),
		riskTx(3, 12000, models.TransactionIncome, now),
	}

	level, reasons := AnalyzeRisk(txs, now)

	assert.Equal(t, RiskLow, level)
	assert.Equal(t, []string{NoRiskIndicators}, reasons)
}

func TestAnalyzeRisk_IncomeSpike(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		riskTx(20, 50000, models.TransactionIncome, now),
		riskTx(1, 120000, models.TransactionIncome, now), // recent > 2x older
	}

	level, reasons := AnalyzeRisk(txs, now)

	assert.Equal(t, RiskMedium, level)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "income spike")
}

func TestAnalyzeRisk_LargeTransactions(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	var txs []models.Transaction
	for i := 0; i < 6; i++ {
		txs = append(txs, riskTx(10+i, 150000, models.TransactionExpense, now))
	}

	level, reasons := AnalyzeRisk(txs, now)

	assert.Equal(t, RiskHigh, level)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "large transactions")
}

func TestAnalyzeRisk_BothHeuristicsEscalate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// One income of 200000 yesterday, nothing older, plus six
	// transactions above the large-amount threshold.
	txs := []models.Transaction{riskTx(1, 200000, models.TransactionIncome, now)}
	for i := 0; i < 5; i++ {
		txs = append(txs, riskTx(10+i, 150000, models.TransactionExpense, now))
	}

	level, reasons := AnalyzeRisk(txs, now)

	assert.Equal(t, RiskHigh, level)
	require.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "income spike")
	assert.Contains(t, reasons[1], "large transactions")
}

func TestAnalyzeRisk_Deterministic(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		riskTx(1, 200000, models.TransactionIncome, now),
		riskTx(12, 150000, models.TransactionExpense, now),
	}

	level1, reasons1 := AnalyzeRisk(txs, now)
	level2, reasons2 := AnalyzeRisk(txs, now)

	assert.Equal(t, level1, level2)
	assert.Equal(t, reasons1, reasons2)
}

func TestAnalyzeRisk_EmptyWindow(t *testing.T) {
	level, reasons := AnalyzeRisk(nil, time.Now())

	assert.Equal(t, RiskLow, level)
	assert.Equal(t, []string{NoRiskIndicators}, reasons)
}
