package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-bot/pennywise/internal/model"
)

// RecordExpense inserts a validated expense and returns its assigned ID.
func (s *SQLiteStorage) RecordExpense(ctx context.Context, expense *model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExpense(expense); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (user_id, amount, category, description, date)
		VALUES (?, ?, ?, ?, ?)
	`,
		expense.UserID,
		expense.Amount.StringFixed(2),
		expense.Category,
		expense.Description,
		expense.DateString(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get expense ID: %w", err)
	}

	expense.ID = id
	return id, nil
}

// ListExpenses returns the user's expenses whose civil date falls in
// [start, end), newest first.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, userID int64, start, end time.Time) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	// Dates are stored as YYYY-MM-DD strings, so lexicographic comparison
	// matches chronological order.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, category, description, date, created_at
		FROM expenses
		WHERE user_id = ? AND date >= ? AND date < ?
		ORDER BY date DESC, created_at DESC, id DESC
	`, userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			e         model.Expense
			amount    string
			date      string
			createdAt time.Time
		)
		if err := rows.Scan(&e.ID, &e.UserID, &amount, &e.Category, &e.Description, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for expense %d: %w", e.ID, err)
		}
		e.Date, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("corrupt date for expense %d: %w", e.ID, err)
		}
		e.CreatedAt = createdAt

		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// Summarize aggregates the user's expenses in [start, end). A window with
// no rows yields a zero summary, never an error.
func (s *SQLiteStorage) Summarize(ctx context.Context, userID int64, start, end time.Time) (model.Summary, error) {
	expenses, err := s.ListExpenses(ctx, userID, start, end)
	if err != nil {
		return model.Summary{}, err
	}
	return model.Summarize(expenses), nil
}
