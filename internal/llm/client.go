// Package llm extracts structured expense drafts from free text using a
// hosted language model behind a narrow provider interface.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	ExtractExpense(ctx context.Context, prompt string) (ExtractionResponse, error)
}

// ExtractionResponse contains the model's structured guess at an expense.
type ExtractionResponse struct {
	Amount                *float64
	Category              string
	Description           string
	When                  string // "today", "yesterday", or YYYY-MM-DD
	ClarificationQuestion string
	NeedsClarification    bool
}

// Config holds configuration for the LLM extractor.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int // requests per minute
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}
