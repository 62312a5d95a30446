package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pennywise-bot/pennywise/internal/bot"
	"github.com/pennywise-bot/pennywise/internal/config"
	"github.com/pennywise-bot/pennywise/internal/llm"
	"github.com/pennywise-bot/pennywise/internal/storage"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Long: `Start long-polling Telegram for messages and serve them until
interrupted. Requires the Telegram bot token and the language-model API key;
missing either is a fatal startup error.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	extractor, err := llm.NewExtractor(cfg.ExtractorConfig(), slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	b, err := bot.New(cfg.Telegram.Token, store, extractor, slog.Default())
	if err != nil {
		return err
	}

	slog.Info("Starting bot",
		"database", cfg.Database.Path,
		"provider", cfg.LLM.Provider)

	return b.Run(ctx)
}
