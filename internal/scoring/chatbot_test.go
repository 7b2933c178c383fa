package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finbridge/internal/models"
)

func chatContext(txs []models.Transaction, products []models.LoanProduct) ChatContext {
	summary := BuildCashflowSummary(txs)
	eligibility := ScoreEligibility(summary)
	return ChatContext{
		Summary:     summary,
		Eligibility: eligibility,
		Health:      ScoreHealth(summary, eligibility),
		Products:    products,
	}
}

func TestReply_Affordability(t *testing.T) {
	ctx := chatContext(monthsOf(6, 50000, 20000), nil)

	t.Run("within budget", func(t *testing.T) {
		// EMI(200000, 12%, 24) is ~9415, under the 20000 cap (40% of 50000).
		reply := Reply("Can I afford a loan of 200000?", ctx)
		assert.Contains(t, reply, "can likely afford")
		assert.Contains(t, reply, "₹200000")
		assert.Contains(t, reply, "₹9415")
	})

	t.Run("over budget", func(t *testing.T) {
		reply := Reply("Can I afford a loan of 800000?", ctx)
		assert.Contains(t, reply, "might be challenging")
	})

	t.Run("no amount in message", func(t *testing.T) {
		reply := Reply("Can I afford a loan?", ctx)
		assert.Contains(t, reply, "tell me the loan amount")
	})
}

func TestReply_IntentPriority(t *testing.T) {
	ctx := chatContext(monthsOf(6, 50000, 20000), nil)

	// Affordability outranks the eligibility intent even though the
	// message mentions both.
	reply := Reply("Am I eligible to afford a loan of 100000?", ctx)
	assert.Contains(t, reply, "can likely afford")
}

func TestReply_ImproveScore(t *testing.T) {
	t.Run("weak profile gets suggestions", func(t *testing.T) {
		ctx := chatContext(nil, nil)
		reply := Reply("How do I improve my score?", ctx)
		assert.Contains(t, reply, "To improve your score")
		assert.Contains(t, reply, "savings rate")
	})

	t.Run("strong profile gets praise", func(t *testing.T) {
		ctx := chatContext(monthsOf(6, 60000, 15000), nil)
		reply := Reply("How do I improve my score?", ctx)
		assert.Contains(t, reply, "already strong")
	})
}

func TestReply_SimpleIntents(t *testing.T) {
	products := []models.LoanProduct{
		{LenderName: "MicroFin Bank", InterestRate: 12.5, MinAmount: 50000, MaxAmount: 500000},
	}
	ctx := chatContext(monthsOf(6, 50000, 20000), products)

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"eligibility", "What is my eligibility?", "eligibility score is"},
		{"income", "What's my monthly income?", "average monthly income"},
		{"expenses", "Where does my spending go?", "per month"},
		{"savings", "Am I saving enough?", "savings rate"},
		{"emi", "Calculate EMI for 120000", "EMI comes to about"},
		{"emi without amount", "Calculate my EMI please", "tell me the loan amount"},
		{"health", "How is my financial health?", "financial health score"},
		{"products", "What loan options do you have?", "MicroFin Bank"},
		{"greeting", "Hello!", "financial advisor"},
		{"thanks", "Thank you so much", "You're welcome"},
		{"fallback", "What is the meaning of life?", "I can help you"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Reply(tt.message, ctx), tt.contains)
		})
	}
}

func TestReply_EmptyHistoryNeverPanics(t *testing.T) {
	ctx := chatContext(nil, nil)

	messages := []string{
		"What's my income?",
		"Show my expenses",
		"Am I saving enough?",
		"Can I afford a loan of 50000?",
	}
	for _, msg := range messages {
		assert.NotEmpty(t, Reply(msg, ctx))
	}
}

func TestReply_FallbackMentionsHealthScore(t *testing.T) {
	ctx := chatContext(monthsOf(2, 42500, 11000), nil)

	reply := Reply("tell me something", ctx)
	assert.Contains(t, reply, "85/100")
}
