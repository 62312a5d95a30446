// Package storage provides the data persistence layer for the expense ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pennywise-bot/pennywise/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidDateRange  = errors.New("start date must be before end date")
	ErrInvalidExpense    = errors.New("invalid expense")
	ErrInvalidPreference = errors.New("invalid preferences")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpense re-checks invariants at the storage boundary so a bad
// draft cannot reach the ledger even if earlier validation is bypassed.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if expense.UserID == 0 {
		return fmt.Errorf("%w: missing user ID", ErrInvalidExpense)
	}
	if !expense.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidExpense, expense.Amount)
	}
	if expense.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	return nil
}

// validatePreferences validates a preferences row before writing.
func validatePreferences(prefs *model.UserPreferences) error {
	if prefs == nil {
		return fmt.Errorf("%w: preferences", ErrNilParameter)
	}
	if prefs.UserID == 0 {
		return fmt.Errorf("%w: missing user ID", ErrInvalidPreference)
	}
	if strings.TrimSpace(prefs.Currency) == "" {
		return fmt.Errorf("%w: missing currency", ErrInvalidPreference)
	}
	if strings.TrimSpace(prefs.Timezone) == "" {
		return fmt.Errorf("%w: missing timezone", ErrInvalidPreference)
	}
	return nil
}
