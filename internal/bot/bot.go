package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pennywise-bot/pennywise/internal/service"
)

// Bot runs the Telegram long-polling loop and hands each message to the
// router. Updates are handled concurrently so one user's model call does
// not block other users.
type Bot struct {
	api    *tgbotapi.BotAPI
	router *Router
	logger *slog.Logger
}

// New creates a Telegram bot around the given storage and extractor.
func New(token string, storage service.Storage, extractor service.Extractor, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Bot{
		api:    api,
		router: NewRouter(storage, extractor, logger),
		logger: logger,
	}, nil
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	var reply string
	isCommand := msg.IsCommand()
	if isCommand {
		reply = b.router.HandleCommand(ctx, userID, msg.Command(), time.Now())
	} else {
		// Extraction can take a few seconds; show the typing indicator.
		if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
			b.logger.Debug("failed to send typing action", "error", err)
		}
		reply = b.router.HandleText(ctx, userID, msg.Text, time.Now())
	}

	if _, err := b.api.Send(newReply(chatID, reply, isCommand)); err != nil {
		b.logger.Error("failed to send reply", "chat_id", chatID, "error", err)
	}
}

// newReply builds the outgoing message. Command replies come from fixed
// Markdown templates. Free-text replies carry user and model text verbatim,
// so they are sent without a parse mode: a stray "*" or "_" in a description
// would otherwise make Telegram reject the whole message.
func newReply(chatID int64, text string, markdown bool) tgbotapi.MessageConfig {
	out := tgbotapi.NewMessage(chatID, text)
	if markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	return out
}
