package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-bot/pennywise/internal/common"
	"github.com/pennywise-bot/pennywise/internal/model"
	"github.com/pennywise-bot/pennywise/internal/service"
)

// Extractor implements the service.Extractor interface using LLM APIs.
type Extractor struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
	timeout     time.Duration
}

// NewExtractor creates a new LLM-backed extractor.
func NewExtractor(cfg Config, logger *slog.Logger) (*Extractor, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return newExtractorWithClient(client, cfg, logger), nil
}

func newExtractorWithClient(client Client, cfg Config, logger *slog.Logger) *Extractor {
	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		// One original call plus one bounded retry on transport error.
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Extractor{
		client:      client,
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		retryOpts:   retryOpts,
		timeout:     timeout,
	}
}

// Extract sends the message text to the model and returns a validated
// expense draft. Empty text is rejected locally without a model call.
func (e *Extractor) Extract(ctx context.Context, text string, receivedAt time.Time, loc *time.Location) (*model.Expense, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrEmptyMessage
	}
	if loc == nil {
		loc = time.UTC
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if err := e.rateLimiter.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	prompt := buildExtractionPrompt(text, receivedAt.In(loc))

	var resp ExtractionResponse
	err := common.WithRetry(ctx, func() error {
		var callErr error
		resp, callErr = e.client.ExtractExpense(ctx, prompt)
		return callErr
	}, e.retryOpts)
	if err != nil {
		e.logger.Warn("model call failed",
			"error", err,
			"text_length", len(text))
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	if resp.NeedsClarification {
		question := resp.ClarificationQuestion
		if question == "" {
			question = "Could you provide more details?"
		}
		return nil, &common.ClarificationError{Question: question}
	}

	if resp.Amount == nil || *resp.Amount <= 0 {
		return nil, fmt.Errorf("%w: message %q", common.ErrNoAmount, text)
	}

	expense := &model.Expense{
		Amount:      decimal.NewFromFloat(*resp.Amount).Round(2),
		Category:    model.NormalizeCategory(resp.Category),
		Description: resp.Description,
		Date:        resolveDate(resp.When, receivedAt, loc),
	}

	e.logger.Info("expense extracted",
		"amount", expense.Amount.String(),
		"category", expense.Category,
		"date", expense.DateString())

	return expense, nil
}

// resolveDate maps the model's "when" field onto a civil date in the user's
// location. Anything ambiguous falls back to the receipt date.
func resolveDate(when string, receivedAt time.Time, loc *time.Location) time.Time {
	local := receivedAt.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch when {
	case "", "today":
		return today
	case "yesterday":
		return today.AddDate(0, 0, -1)
	}

	if parsed, err := time.ParseInLocation("2006-01-02", when, loc); err == nil {
		return parsed
	}
	return today
}
