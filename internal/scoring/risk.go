package scoring

import (
	"time"

	"finbridge/internal/models"
)

// Risk heuristic configuration. The analysis window is the 30 most
// recent transactions; the spike check compares income inside the last
// seven days against the rest of the window.
const (
	RiskWindowSize        = 30
	SpikeWindow           = 7 * 24 * time.Hour
	LargeTxAmount         = 100000.0
	LargeTxCountThreshold = 5
)

const NoRiskIndicators = "No risk indicators detected"

// AnalyzeRisk runs the anomaly heuristics over a user's recent
// transactions. Each heuristic is evaluated independently; two or more
// firing escalates the level to HIGH. Deterministic for a given snapshot
// and clock.
func AnalyzeRisk(recent []models.Transaction, now time.Time) (RiskLevel, []string) {
	cutoff := now.Add(-SpikeWindow)

	var recentIncome, olderIncome float64
	largeCount := 0
	for _, tx := range recent {
		if tx.Type == models.TransactionIncome {
			if tx.Date.After(cutoff) {
				recentIncome += tx.Amount
			} else {
				olderIncome += tx.Amount
			}
		}
		if tx.Amount > LargeTxAmount {
			largeCount++
		}
	}

	level := RiskLow
	var reasons []string

	if recentIncome > olderIncome*2 && recentIncome > 0 {
		reasons = append(reasons, "Sudden income spike in last 7 days")
		level = RiskMedium
	}

	if largeCount > LargeTxCountThreshold {
		reasons = append(reasons, "Multiple large transactions detected")
		level = RiskHigh
	}

	if len(reasons) >= 2 {
		level = RiskHigh
	}

	if len(reasons) == 0 {
		reasons = append(reasons, NoRiskIndicators)
	}

	return level, reasons
}
