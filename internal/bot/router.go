// Package bot routes inbound chat messages to the extractor and the ledger
// and renders the replies. The router itself is stateless between messages.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pennywise-bot/pennywise/internal/common"
	"github.com/pennywise-bot/pennywise/internal/model"
	"github.com/pennywise-bot/pennywise/internal/service"
)

// Router classifies each inbound message as a command or free text and
// dispatches it. All cross-message state lives in storage.
type Router struct {
	storage   service.Storage
	extractor service.Extractor
	logger    *slog.Logger
}

// NewRouter creates a message router.
func NewRouter(storage service.Storage, extractor service.Extractor, logger *slog.Logger) *Router {
	return &Router{
		storage:   storage,
		extractor: extractor,
		logger:    logger,
	}
}

// HandleCommand produces the reply for a slash command. Unrecognized
// commands get the help text, never an error.
func (r *Router) HandleCommand(ctx context.Context, userID int64, command string, now time.Time) string {
	switch command {
	case "start":
		// First contact also seeds the preferences row.
		if _, err := r.storage.GetPreferences(ctx, userID); err != nil {
			r.logger.Warn("failed to initialize preferences", "user_id", userID, "error", err)
		}
		return welcomeMessage
	case "today":
		return r.summaryReply(ctx, userID, model.WindowToday, now)
	case "week":
		return r.summaryReply(ctx, userID, model.WindowWeek, now)
	case "month":
		return r.summaryReply(ctx, userID, model.WindowMonth, now)
	case "help":
		return helpMessage
	default:
		return helpMessage
	}
}

// HandleText runs the extract-record-confirm flow for a free-text message.
// Nothing is persisted unless extraction produced a valid draft.
func (r *Router) HandleText(ctx context.Context, userID int64, text string, now time.Time) string {
	prefs := r.preferences(ctx, userID)

	draft, err := r.extractor.Extract(ctx, text, now, prefs.Location())
	if err != nil {
		var clarification *common.ClarificationError
		if errors.As(err, &clarification) {
			return clarification.Question
		}
		if errors.Is(err, common.ErrEmptyMessage) || errors.Is(err, common.ErrNoAmount) {
			return cannotParseMessage
		}
		// Model call errored or timed out.
		r.logger.Warn("extraction failed", "user_id", userID, "error", err)
		return cannotParseMessage
	}

	draft.UserID = userID
	if _, err := r.storage.RecordExpense(ctx, draft); err != nil {
		common.LogError(err, "failed to record expense", common.Fields{
			"user_id":  userID,
			"category": draft.Category,
		})
		return tryAgainMessage
	}

	// Running total is best effort; the confirmation stands without it.
	var todayTotal *model.Summary
	start, end := model.WindowToday.Bounds(now, prefs.Location())
	if summary, err := r.storage.Summarize(ctx, userID, start, end); err == nil {
		todayTotal = &summary
	}

	if todayTotal != nil {
		return renderConfirmation(draft, prefs.Currency, &todayTotal.Total)
	}
	return renderConfirmation(draft, prefs.Currency, nil)
}

func (r *Router) summaryReply(ctx context.Context, userID int64, window model.Window, now time.Time) string {
	prefs := r.preferences(ctx, userID)

	start, end := window.Bounds(now, prefs.Location())
	summary, err := r.storage.Summarize(ctx, userID, start, end)
	if err != nil {
		common.LogError(err, "failed to summarize expenses", common.Fields{
			"user_id": userID,
			"window":  string(window),
		})
		return tryAgainMessage
	}

	return renderSummary(window, summary, prefs.Currency)
}

// preferences fetches the user's row, falling back to defaults when storage
// misbehaves so summaries and confirmations still render.
func (r *Router) preferences(ctx context.Context, userID int64) *model.UserPreferences {
	prefs, err := r.storage.GetPreferences(ctx, userID)
	if err != nil {
		r.logger.Warn("failed to load preferences, using defaults", "user_id", userID, "error", err)
		return model.DefaultPreferences(userID)
	}
	return prefs
}
