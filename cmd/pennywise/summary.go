package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-bot/pennywise/internal/config"
	"github.com/pennywise-bot/pennywise/internal/model"
	"github.com/pennywise-bot/pennywise/internal/storage"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a spending summary for a user",
		Long: `Read a window summary straight from the database, without going
through Telegram. Useful for checking what the bot would answer.`,
		RunE: runSummary,
	}

	cmd.Flags().Int64("user", 0, "Telegram user ID")
	cmd.Flags().String("window", "today", "summary window (today, week, month)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	userID, _ := cmd.Flags().GetInt64("user")
	windowFlag, _ := cmd.Flags().GetString("window")

	window, err := model.ParseWindow(windowFlag)
	if err != nil {
		return err
	}

	cfg := config.Load()
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	prefs, err := store.GetPreferences(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	start, end := window.Bounds(time.Now(), prefs.Location())
	summary, err := store.Summarize(ctx, userID, start, end)
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}

	fmt.Printf("%s summary for user %d (%s to %s)\n",
		window, userID, start.Format("2006-01-02"), end.AddDate(0, 0, -1).Format("2006-01-02"))
	for _, ct := range summary.ByCategory {
		fmt.Printf("  %-14s %s %s\n", ct.Category, prefs.Currency, ct.Total.StringFixed(2))
	}
	fmt.Printf("total: %s %s over %d expenses\n", prefs.Currency, summary.Total.StringFixed(2), summary.Count)

	return nil
}
