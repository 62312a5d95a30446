package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pennywise-bot/pennywise/internal/model"
)

const welcomeMessage = `👋 Welcome to Pennywise!

Just send me your expenses in natural language:
- "coffee 5"
- "lunch 23.50 with Sarah"
- "uber 15"
- "groceries 67.80"

Commands:
/today - Today's expenses
/week - This week's expenses
/month - This month's expenses
/help - Show this message

Let's start tracking! 💰`

const helpMessage = `📊 How to use Pennywise:

*Logging expenses:*
Just type naturally:
- "coffee 4.50"
- "dinner 45 italian restaurant"
- "gas 60"

*View expenses:*
/today - See today's spending
/week - See this week's spending
/month - See this month's spending

That's it! I'll handle the rest. 🎯`

const cannotParseMessage = `I couldn't understand that. Please try something like "coffee 5" or "lunch 25".`

const tryAgainMessage = "Sorry, something went wrong. Please try again."

var categoryEmoji = map[string]string{
	"food":          "🍔",
	"coffee":        "☕",
	"transport":     "🚗",
	"groceries":     "🛒",
	"entertainment": "🎬",
	"shopping":      "🛍️",
	"bills":         "📄",
	"health":        "💊",
	"other":         "💰",
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

func emojiFor(category string) string {
	if emoji, ok := categoryEmoji[strings.ToLower(category)]; ok {
		return emoji
	}
	return "💰"
}

// formatAmount renders a decimal amount with the user's currency. Known
// currencies get their symbol; anything else is prefixed with the code.
func formatAmount(currency string, amount decimal.Decimal) string {
	if symbol, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return symbol + amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}

var windowHeadings = map[model.Window]string{
	model.WindowToday: "📅 *Today's Expenses*",
	model.WindowWeek:  "📊 *This Week's Expenses*",
	model.WindowMonth: "📈 *This Month's Expenses*",
}

var emptyWindowMessages = map[model.Window]string{
	model.WindowToday: "No expenses logged today. Start tracking! 💸",
	model.WindowWeek:  "No expenses logged this week.",
	model.WindowMonth: "No expenses logged this month.",
}

// renderSummary formats a window summary as a Markdown chat reply.
// Category lines keep the deterministic order the summary provides.
func renderSummary(window model.Window, summary model.Summary, currency string) string {
	if summary.Count == 0 {
		return emptyWindowMessages[window]
	}

	var b strings.Builder
	b.WriteString(windowHeadings[window])
	b.WriteString("\n\n")

	for _, ct := range summary.ByCategory {
		fmt.Fprintf(&b, "%s %s: %s", emojiFor(ct.Category), ct.Category, formatAmount(currency, ct.Total))
		if window == model.WindowMonth && summary.Total.IsPositive() {
			share := ct.Total.Div(summary.Total).Mul(decimal.NewFromInt(100))
			fmt.Fprintf(&b, " (%s%%)", share.StringFixed(1))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*", formatAmount(currency, summary.Total))
	if window != model.WindowToday {
		fmt.Fprintf(&b, "\n📝 %d transactions", summary.Count)
	}

	return b.String()
}

// renderConfirmation formats the reply sent after an expense is recorded.
// todayTotal may be nil when the running total could not be computed.
func renderConfirmation(expense *model.Expense, currency string, todayTotal *decimal.Decimal) string {
	label := expense.Description
	if label == "" {
		label = expense.Category
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Logged %s\n", formatAmount(currency, expense.Amount))
	fmt.Fprintf(&b, "%s %s: %s", emojiFor(expense.Category), expense.Category, label)
	if todayTotal != nil {
		fmt.Fprintf(&b, "\n📅 Today so far: %s", formatAmount(currency, *todayTotal))
	}
	return b.String()
}
