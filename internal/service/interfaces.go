// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/pennywise-bot/pennywise/internal/model"
)

// Storage defines the contract for the persistence layer. Expenses are
// append-only; summarization is a read-only aggregation over a date window.
type Storage interface {
	// Expense operations
	RecordExpense(ctx context.Context, expense *model.Expense) (int64, error)
	ListExpenses(ctx context.Context, userID int64, start, end time.Time) ([]model.Expense, error)
	Summarize(ctx context.Context, userID int64, start, end time.Time) (model.Summary, error)

	// Preference operations
	GetPreferences(ctx context.Context, userID int64) (*model.UserPreferences, error)
	SavePreferences(ctx context.Context, prefs *model.UserPreferences) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Extractor turns free text into an expense draft via an external language
// model. The returned expense has no ID or UserID; the caller assigns
// ownership before persisting.
type Extractor interface {
	Extract(ctx context.Context, text string, receivedAt time.Time, loc *time.Location) (*model.Expense, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
