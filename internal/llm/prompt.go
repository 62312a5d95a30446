package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/pennywise-bot/pennywise/internal/model"
)

// buildExtractionPrompt assembles the fixed instruction sent with every
// free-text message. Today's and yesterday's dates are interpolated so the
// model can resolve relative phrases like "yesterday".
func buildExtractionPrompt(text string, today time.Time) string {
	var b strings.Builder

	b.WriteString("You are an expense tracking assistant. Extract expense information from the user's message.\n\n")
	fmt.Fprintf(&b, "Current date: %s\n", today.Format("2006-01-02"))
	fmt.Fprintf(&b, "Yesterday's date: %s\n\n", today.AddDate(0, 0, -1).Format("2006-01-02"))

	b.WriteString("Respond with ONLY a valid JSON object, no markdown formatting and no commentary, with these fields:\n")
	b.WriteString(`  "amount": number, the amount of money spent (required)` + "\n")
	fmt.Fprintf(&b, "  %q: string, one of: %s\n", "category", strings.Join(model.Categories, ", "))
	b.WriteString(`  "description": string, a brief description of the expense` + "\n")
	b.WriteString(`  "when": string, "today", "yesterday", or a specific YYYY-MM-DD date; default "today"` + "\n")
	b.WriteString(`  "needs_clarification": boolean, true if the message is unclear` + "\n")
	b.WriteString(`  "clarification_question": string, question to ask the user if clarification is needed` + "\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("1. Be smart about context: \"coffee 5\" means 5 spent on coffee.\n")
	b.WriteString("2. If the message does not contain an amount, set needs_clarification to true.\n")
	b.WriteString("3. Pick the closest category from the list; use \"other\" when nothing fits.\n\n")

	b.WriteString("Examples:\n")
	b.WriteString(`  "coffee 5" -> {"amount": 5, "category": "coffee", "description": "coffee", "when": "today"}` + "\n")
	b.WriteString(`  "lunch 23.50 with Sarah" -> {"amount": 23.50, "category": "food", "description": "lunch with Sarah", "when": "today"}` + "\n")
	b.WriteString(`  "yesterday uber to airport 45" -> {"amount": 45, "category": "transport", "description": "uber to airport", "when": "yesterday"}` + "\n")
	b.WriteString(`  "groceries" -> {"needs_clarification": true, "clarification_question": "How much did you spend on groceries?"}` + "\n\n")

	fmt.Fprintf(&b, "User message: %s", text)

	return b.String()
}
