// Package scoring holds the deterministic computation layer: cashflow
// aggregation, eligibility and health scores, EMI-based loan matching,
// risk heuristics and the rule-based chatbot. Everything here is a pure
// function of its inputs; persistence is the caller's concern.
package scoring

import (
	"math"
	"sort"

	"finbridge/internal/models"
)

type MonthCashflow struct {
	Month       string  `json:"month"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	NetCashflow float64 `json:"netCashflow"`
}

type CashflowSummary struct {
	MonthlyData        []MonthCashflow `json:"monthlyData"`
	TotalIncome        float64         `json:"totalIncome"`
	TotalExpenses      float64         `json:"totalExpenses"`
	NetCashflow        float64         `json:"netCashflow"`
	AvgMonthlyIncome   float64         `json:"avgMonthlyIncome"`
	AvgMonthlyExpenses float64         `json:"avgMonthlyExpenses"`
}

// BuildCashflowSummary buckets transactions by calendar month and totals
// income and expenses per bucket. Months are emitted in ascending key
// order. Averages divide by the number of distinct months observed, so a
// sparse history yields inflated per-month figures.
func BuildCashflowSummary(txs []models.Transaction) CashflowSummary {
	buckets := make(map[string]*MonthCashflow)
	var months []string

	for _, tx := range txs {
		amount := tx.Amount
		if math.IsNaN(amount) {
			amount = 0
		}
		month := tx.Date.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &MonthCashflow{Month: month}
			buckets[month] = bucket
			months = append(months, month)
		}
		if tx.Type == models.TransactionIncome {
			bucket.Income += amount
		} else {
			bucket.Expenses += amount
		}
	}

	sort.Strings(months)

	summary := CashflowSummary{MonthlyData: make([]MonthCashflow, 0, len(months))}
	for _, month := range months {
		bucket := buckets[month]
		bucket.NetCashflow = bucket.Income - bucket.Expenses
		summary.MonthlyData = append(summary.MonthlyData, *bucket)
		summary.TotalIncome += bucket.Income
		summary.TotalExpenses += bucket.Expenses
	}
	summary.NetCashflow = summary.TotalIncome - summary.TotalExpenses

	if n := len(summary.MonthlyData); n > 0 {
		summary.AvgMonthlyIncome = summary.TotalIncome / float64(n)
		summary.AvgMonthlyExpenses = summary.TotalExpenses / float64(n)
	}

	return summary
}

// positiveMonthRatio is the share of observed months with positive net
// cashflow. Used identically by the eligibility and health scorers.
func positiveMonthRatio(summary CashflowSummary) float64 {
	positive := 0
	for _, m := range summary.MonthlyData {
		if m.NetCashflow > 0 {
			positive++
		}
	}
	return float64(positive) / math.Max(float64(len(summary.MonthlyData)), 1)
}
