package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// extractionWire is the JSON shape the prompt asks the model to return.
// Amount is typed loosely because models occasionally quote the number.
type extractionWire struct {
	Amount                any    `json:"amount"`
	Category              string `json:"category"`
	Description           string `json:"description"`
	When                  string `json:"when"`
	NeedsClarification    bool   `json:"needs_clarification"`
	ClarificationQuestion string `json:"clarification_question"`
}

// parseExtraction decodes the model reply into an ExtractionResponse.
func parseExtraction(content string) (ExtractionResponse, error) {
	content = cleanMarkdownWrapper(content)

	var wire extractionWire
	if err := json.Unmarshal([]byte(content), &wire); err != nil {
		return ExtractionResponse{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	resp := ExtractionResponse{
		Category:              strings.TrimSpace(wire.Category),
		Description:           strings.TrimSpace(wire.Description),
		When:                  strings.ToLower(strings.TrimSpace(wire.When)),
		NeedsClarification:    wire.NeedsClarification,
		ClarificationQuestion: strings.TrimSpace(wire.ClarificationQuestion),
	}

	if amount, ok := coerceAmount(wire.Amount); ok {
		resp.Amount = &amount
	}

	return resp, nil
}

// coerceAmount recovers a numeric amount from the JSON value the model
// produced: a number, a quoted number, or a number with stray currency
// symbols around it.
func coerceAmount(v any) (float64, bool) {
	switch amount := v.(type) {
	case float64:
		return amount, true
	case json.Number:
		f, err := amount.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(amount)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
		// Trim surrounding currency symbols only. Interior characters are
		// left alone so "1.234,56" fails instead of silently mangling.
		cleaned := strings.TrimFunc(s, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.'
		})
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// cleanMarkdownWrapper strips the ```json fences models like to add around
// structured replies.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
