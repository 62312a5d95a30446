package bot

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pennywise-bot/pennywise/internal/model"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		amount   string
		want     string
	}{
		{name: "dollars", currency: "USD", amount: "5", want: "$5.00"},
		{name: "euros", currency: "EUR", amount: "12.5", want: "€12.50"},
		{name: "rupees", currency: "INR", amount: "20", want: "₹20.00"},
		{name: "unknown code falls back to prefix", currency: "CHF", amount: "9.9", want: "CHF 9.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatAmount(tt.currency, decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderSummaryOrderIsPreserved(t *testing.T) {
	summary := model.Summarize([]model.Expense{
		{Category: "coffee", Amount: decimal.RequireFromString("4.50")},
		{Category: "transport", Amount: decimal.RequireFromString("45.00")},
		{Category: "food", Amount: decimal.RequireFromString("23.50")},
	})

	reply := renderSummary(model.WindowWeek, summary, "USD")

	transport := indexOf(t, reply, "transport")
	food := indexOf(t, reply, "food")
	coffee := indexOf(t, reply, "coffee")
	assert.Less(t, transport, food, "largest subtotal renders first")
	assert.Less(t, food, coffee)

	assert.Contains(t, reply, "*Total: $73.00*")
	assert.Contains(t, reply, "3 transactions")
}

func TestRenderSummaryMonthIncludesShares(t *testing.T) {
	summary := model.Summarize([]model.Expense{
		{Category: "food", Amount: decimal.RequireFromString("75.00")},
		{Category: "bills", Amount: decimal.RequireFromString("25.00")},
	})

	reply := renderSummary(model.WindowMonth, summary, "USD")
	assert.Contains(t, reply, "(75.0%)")
	assert.Contains(t, reply, "(25.0%)")
}

func TestRenderConfirmationWithoutRunningTotal(t *testing.T) {
	expense := &model.Expense{
		Category: "coffee",
		Amount:   decimal.RequireFromString("5.00"),
	}

	reply := renderConfirmation(expense, "USD", nil)
	assert.Contains(t, reply, "Logged $5.00")
	assert.NotContains(t, reply, "Today so far")
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := strings.Index(s, sub)
	assert.GreaterOrEqual(t, idx, 0, "expected %q in %q", sub, s)
	return idx
}
