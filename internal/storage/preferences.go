package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pennywise-bot/pennywise/internal/model"
)

// GetPreferences returns the user's preferences, creating a row with
// defaults on first contact.
func (s *SQLiteStorage) GetPreferences(ctx context.Context, userID int64) (*model.UserPreferences, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	prefs := &model.UserPreferences{}
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, currency, timezone
		FROM user_preferences
		WHERE user_id = ?
	`, userID).Scan(&prefs.UserID, &prefs.Currency, &prefs.Timezone)

	if errors.Is(err, sql.ErrNoRows) {
		prefs = model.DefaultPreferences(userID)
		if saveErr := s.SavePreferences(ctx, prefs); saveErr != nil {
			return nil, saveErr
		}
		return prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences upserts a preferences row.
func (s *SQLiteStorage) SavePreferences(ctx context.Context, prefs *model.UserPreferences) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePreferences(prefs); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, currency, timezone)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			currency = excluded.currency,
			timezone = excluded.timezone
	`, prefs.UserID, prefs.Currency, prefs.Timezone)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
