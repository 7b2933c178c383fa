package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"finbridge/internal/models"
)

// Assumptions used when the user asks about a loan without naming a
// product: a ballpark 12% annual rate over 24 months.
const (
	AssumedAnnualRatePct = 12.0
	AssumedTenureMonths  = 24
	MaxEMIIncomeShare    = 0.4
)

// ChatContext is everything the responder may reference: the caller
// recomputes it from the current transaction snapshot on every message.
type ChatContext struct {
	Summary     CashflowSummary
	Eligibility EligibilityResult
	Health      HealthResult
	Products    []models.LoanProduct
}

type intent struct {
	name    string
	match   func(msg string) bool
	respond func(msg string, ctx ChatContext) string
}

// intents is checked in order; the first match wins. Ordering is part of
// the contract: "can I afford a loan" must hit affordability, not the
// generic loan-products listing.
var intents = []intent{
	{"affordability", matchAll("loan", "afford"), respondAffordability},
	{"improve_score", matchAll("improve", "score"), respondImproveScore},
	{"eligibility", matchAny("eligibility", "eligible"), respondEligibility},
	{"income", matchAny("income", "earn", "salary"), respondIncome},
	{"expenses", matchAny("expense", "spend"), respondExpenses},
	{"savings", matchAny("saving", "save"), respondSavings},
	{"emi", matchAny("emi", "installment", "monthly payment"), respondEMI},
	{"health", matchAny("health", "wellness"), respondHealth},
	{"loan_products", matchAny("loan product", "loans available", "loan option", "available loans", "which loans"), respondProducts},
	{"greeting", matchGreeting, respondGreeting},
	{"thanks", matchAny("thank"), respondThanks},
}

// Reply dispatches a free-text message through the intent table and
// renders a templated answer from the user's current financial context.
func Reply(message string, ctx ChatContext) string {
	msg := strings.ToLower(message)
	for _, it := range intents {
		if it.match(msg) {
			return it.respond(msg, ctx)
		}
	}
	return fmt.Sprintf(
		"I can help you with questions about loan affordability, improving your financial scores, EMI calculations, and eligibility. Your current financial health score is %d/100. What would you like to know?",
		ctx.Health.Score,
	)
}

func matchAll(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if !strings.Contains(msg, w) {
				return false
			}
		}
		return true
	}
}

func matchAny(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

var greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "greetings"}

func matchGreeting(msg string) bool {
	trimmed := strings.TrimSpace(msg)
	for _, g := range greetings {
		if trimmed == g || strings.HasPrefix(trimmed, g+" ") || strings.HasPrefix(trimmed, g+",") || strings.HasPrefix(trimmed, g+"!") {
			return true
		}
	}
	return false
}

var numberPattern = regexp.MustCompile(`\d+`)

// extractAmount pulls the first integer out of the message.
func extractAmount(msg string) (float64, bool) {
	match := numberPattern.FindString(msg)
	if match == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func respondAffordability(msg string, ctx ChatContext) string {
	amount, ok := extractAmount(msg)
	if !ok {
		return "Please tell me the loan amount you are considering, and I'll check whether the EMI fits your income."
	}

	emi := EMI(amount, AssumedAnnualRatePct, AssumedTenureMonths)
	maxEMI := ctx.Summary.AvgMonthlyIncome * MaxEMIIncomeShare

	if emi <= maxEMI {
		return fmt.Sprintf(
			"Based on your average monthly income of ₹%.0f, you can likely afford a loan of ₹%.0f. The estimated EMI would be around ₹%.0f for %d months, which is within the recommended 40%% of your income.",
			math.Round(ctx.Summary.AvgMonthlyIncome), amount, math.Round(emi), AssumedTenureMonths,
		)
	}
	return fmt.Sprintf(
		"A loan of ₹%.0f might be challenging. The estimated EMI of ₹%.0f exceeds 40%% of your monthly income. Consider a smaller amount or longer tenure.",
		amount, math.Round(emi),
	)
}

func respondImproveScore(_ string, ctx ChatContext) string {
	var suggestions []string
	if ctx.Health.Score < 70 {
		if ctx.Health.Breakdown.CashflowStability < 70 {
			suggestions = append(suggestions, "maintain consistent positive cashflow")
		}
		if ctx.Health.Breakdown.SavingsRate < 20 {
			suggestions = append(suggestions, "increase your savings rate by reducing expenses")
		}
		if ctx.Eligibility.Score < 60 {
			suggestions = append(suggestions, "build a stronger income history over time")
		}
	}
	if len(suggestions) == 0 {
		return fmt.Sprintf("Your score is already strong at %d/100! Keep maintaining healthy financial habits.", ctx.Health.Score)
	}
	return fmt.Sprintf("To improve your score, focus on: %s. Your current health score is %d/100.",
		strings.Join(suggestions, ", "), ctx.Health.Score)
}

func respondEligibility(_ string, ctx ChatContext) string {
	return fmt.Sprintf(
		"Your current loan eligibility score is %d/100 with a %s risk level. This is based on your income stability, expense patterns, and cashflow consistency.",
		ctx.Eligibility.Score, ctx.Eligibility.RiskLevel,
	)
}

func respondIncome(_ string, ctx ChatContext) string {
	s := ctx.Summary
	if len(s.MonthlyData) == 0 {
		return "I don't see any transactions yet. Add some income records and I'll summarise your earnings."
	}
	return fmt.Sprintf(
		"Your average monthly income is ₹%.0f across %d months of history, with total recorded income of ₹%.0f.",
		math.Round(s.AvgMonthlyIncome), len(s.MonthlyData), math.Round(s.TotalIncome),
	)
}

func respondExpenses(_ string, ctx ChatContext) string {
	s := ctx.Summary
	if len(s.MonthlyData) == 0 {
		return "I don't see any transactions yet. Add some expense records and I'll break down your spending."
	}
	return fmt.Sprintf(
		"You spend on average ₹%.0f per month; total recorded expenses are ₹%.0f against ₹%.0f of income.",
		math.Round(s.AvgMonthlyExpenses), math.Round(s.TotalExpenses), math.Round(s.TotalIncome),
	)
}

func respondSavings(_ string, ctx ChatContext) string {
	s := ctx.Summary
	if s.AvgMonthlyIncome <= 0 {
		return "I can't estimate savings without income history. Add your income transactions first."
	}
	monthly := s.AvgMonthlyIncome - s.AvgMonthlyExpenses
	rate := math.Max(0, monthly/s.AvgMonthlyIncome) * 100
	return fmt.Sprintf(
		"You save roughly ₹%.0f per month, a savings rate of %.0f%% of your income.",
		math.Round(monthly), math.Round(rate),
	)
}

func respondEMI(msg string, ctx ChatContext) string {
	amount, ok := extractAmount(msg)
	if !ok {
		return "I'll help you calculate the monthly EMI. Could you tell me the loan amount you need?"
	}
	emi := EMI(amount, AssumedAnnualRatePct, AssumedTenureMonths)
	return fmt.Sprintf(
		"For a loan of ₹%.0f at an assumed %.0f%% annual rate over %d months, the EMI comes to about ₹%.0f.",
		amount, AssumedAnnualRatePct, AssumedTenureMonths, math.Round(emi),
	)
}

func respondHealth(_ string, ctx ChatContext) string {
	b := ctx.Health.Breakdown
	return fmt.Sprintf(
		"Your financial health score is %d/100 (%s). Breakdown: cashflow stability %d, savings rate %d, debt ratio %d, eligibility %d.",
		ctx.Health.Score, ctx.Health.Category, b.CashflowStability, b.SavingsRate, b.DebtRatio, b.Eligibility,
	)
}

func respondProducts(_ string, ctx ChatContext) string {
	if len(ctx.Products) == 0 {
		return "No loan products are available right now. Check back later or ask me about affordability."
	}
	parts := make([]string, 0, len(ctx.Products))
	for _, p := range ctx.Products {
		parts = append(parts, fmt.Sprintf("%s (%.1f%% p.a., ₹%.0f-₹%.0f)", p.LenderName, p.InterestRate, p.MinAmount, p.MaxAmount))
	}
	return "Available loan products: " + strings.Join(parts, "; ") + ". Ask me about affordability to see which fit your profile."
}

func respondGreeting(_ string, _ ChatContext) string {
	return "Hello! I'm your financial advisor. How can I help you today?"
}

func respondThanks(_ string, _ ChatContext) string {
	return "You're welcome! Happy to help!"
}
