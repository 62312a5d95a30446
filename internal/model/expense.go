// Package model defines the core domain types for the expense ledger.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single logged transaction for one user.
type Expense struct {
	Date        time.Time
	CreatedAt   time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	ID          int64
	UserID      int64
}

// DateString returns the civil date of the expense in storage format.
func (e *Expense) DateString() string {
	return e.Date.Format("2006-01-02")
}
