package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbridge/internal/models"
)

func tx(date string, amount float64, txType models.TransactionType) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{Date: d, Amount: amount, Type: txType}
}

func TestBuildCashflowSummary_Empty(t *testing.T) {
	summary := BuildCashflowSummary(nil)

	assert.Empty(t, summary.MonthlyData)
	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpenses)
	assert.Zero(t, summary.NetCashflow)
	assert.Zero(t, summary.AvgMonthlyIncome)
	assert.Zero(t, summary.AvgMonthlyExpenses)
}

func TestBuildCashflowSummary_TwoMonths(t *testing.T) {
	summary := BuildCashflowSummary([]models.Transaction{
		tx("2024-01-05", 40000, models.TransactionIncome),
		tx("2024-01-20", 10000, models.TransactionExpense),
		tx("2024-02-03", 45000, models.TransactionIncome),
		tx("2024-02-18", 12000, models.TransactionExpense),
	})

	require.Len(t, summary.MonthlyData, 2)
	assert.Equal(t, MonthCashflow{Month: "2024-01", Income: 40000, Expenses: 10000, NetCashflow: 30000}, summary.MonthlyData[0])
	assert.Equal(t, MonthCashflow{Month: "2024-02", Income: 45000, Expenses: 12000, NetCashflow: 33000}, summary.MonthlyData[1])

	assert.Equal(t, 85000.0, summary.TotalIncome)
	assert.Equal(t, 22000.0, summary.TotalExpenses)
	assert.Equal(t, 63000.0, summary.NetCashflow)
	assert.Equal(t, 42500.0, summary.AvgMonthlyIncome)
	assert.Equal(t, 11000.0, summary.AvgMonthlyExpenses)
}

func TestBuildCashflowSummary_MonthsSortedRegardlessOfInputOrder(t *testing.T) {
	summary := BuildCashflowSummary([]models.Transaction{
		tx("2024-03-01", 100, models.TransactionIncome),
		tx("2024-01-01", 100, models.TransactionIncome),
		tx("2024-02-01", 100, models.TransactionIncome),
	})

	require.Len(t, summary.MonthlyData, 3)
	assert.Equal(t, "2024-01", summary.MonthlyData[0].Month)
	assert.Equal(t, "2024-02", summary.MonthlyData[1].Month)
	assert.Equal(t, "2024-03", summary.MonthlyData[2].Month)
}

func TestBuildCashflowSummary_PartitionIsExhaustive(t *testing.T) {
	txs := []models.Transaction{
		tx("2023-11-02", 12500, models.TransactionIncome),
		tx("2023-11-15", 3300, models.TransactionExpense),
		tx("2023-12-01", 18000, models.TransactionIncome),
		tx("2023-12-09", 250, models.TransactionExpense),
		tx("2024-01-22", 9000, models.TransactionExpense),
	}
	summary := BuildCashflowSummary(txs)

	var income, expenses float64
	for _, m := range summary.MonthlyData {
		income += m.Income
		expenses += m.Expenses
	}
	assert.Equal(t, summary.TotalIncome, income)
	assert.Equal(t, summary.TotalExpenses, expenses)
	assert.Equal(t, summary.TotalIncome-summary.TotalExpenses, summary.NetCashflow)
}

func TestBuildCashflowSummary_NaNAmountTreatedAsZero(t *testing.T) {
	summary := BuildCashflowSummary([]models.Transaction{
		tx("2024-01-05", 1000, models.TransactionIncome),
		{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Amount: math.NaN(), Type: models.TransactionExpense},
	})

	assert.Equal(t, 1000.0, summary.TotalIncome)
	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.False(t, math.IsNaN(summary.NetCashflow))
}

func TestBuildCashflowSummary_Deterministic(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-05", 40000, models.TransactionIncome),
		tx("2024-02-03", 45000, models.TransactionIncome),
		tx("2024-02-18", 12000, models.TransactionExpense),
	}

	first := BuildCashflowSummary(txs)
	second := BuildCashflowSummary(txs)
	assert.Equal(t, first, second)
}
