package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"mvdan.cc/xurls/v2"

	"tldrbot/internal/database"
	"tldrbot/internal/markdown"
)

const (
	limitReachedText = "🚫 Daily article limit reached\\. Try again tomorrow\\."
	fetchFailedText  = "✖️ Failed to extract article from URL\\."
	upstreamText     = "❌ Summarization failed\\. Try again later\\."
	noURLText        = "Please send an article URL\\."
)

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	return b.withSpinner(ctx, message.Chat.ID, func() error {
		text := strings.TrimSpace(message.Text)

		switch {
		case strings.HasPrefix(text, "/start"):
			return b.handleStartCommand(message.Chat.ID)
		case strings.HasPrefix(text, "/menu"):
			return b.handleMenuCommand(message.Chat.ID)
		case strings.HasPrefix(text, "/usage"):
			return b.handleUsageCommand(ctx, message.Chat.ID, message.From.ID)
		default:
			return b.handleArticleMessage(ctx, text, message.Chat.ID, message.From.ID)
		}
	})
}

func (b *Bot) handleArticleMessage(
	ctx context.Context,
	text string,
	chatID int64,
	userID int64,
) error {
	articleURL := firstURL(text)
	if articleURL == "" {
		return b.sendMessageWithKeyboard(chatID, noURLText, b.returnKeyboard)
	}

	summary, count, err := b.summarizeArticle(ctx, userID, articleURL)
	if err != nil {
		return b.handleSummarizeError(ctx, err, chatID, userID, articleURL)
	}

	var errs []error

	paragraphMessage := "🔍 *Summary*\n\n" + markdown.EscapeV2(summary.Paragraph)
	for _, chunk := range splitMessage(paragraphMessage) {
		if sendErr := b.sendMessageWithKeyboard(chatID, chunk, b.returnKeyboard); sendErr != nil {
			errs = append(errs, fmt.Errorf("send summary: %w", sendErr))
		}
	}

	bulletsMessage := "📌 *Key points*\n\n" + markdown.EscapeV2(summary.BulletPoints)
	for _, chunk := range splitMessage(bulletsMessage) {
		if sendErr := b.sendMessageWithKeyboard(chatID, chunk, b.returnKeyboard); sendErr != nil {
			errs = append(errs, fmt.Errorf("send bullet points: %w", sendErr))
		}
	}

	confirmation := fmt.Sprintf(
		"✅ Done\\! This counts toward your daily quota \\(%d of %d used today\\)\\.",
		count,
		b.dailyCap,
	)
	if sendErr := b.sendMessageWithKeyboard(chatID, confirmation, b.returnKeyboard); sendErr != nil {
		errs = append(errs, fmt.Errorf("send confirmation: %w", sendErr))
	}

	return errors.Join(errs...)
}

func (b *Bot) handleSummarizeError(
	ctx context.Context,
	err error,
	chatID int64,
	userID int64,
	articleURL string,
) error {
	if errors.Is(err, database.ErrDailyLimitReached) {
		// A refusal, not a failure.
		b.log.InfoContext(ctx, "Daily article limit reached",
			"chatID", chatID,
			"userID", userID,
			"articleURL", articleURL)

		return b.sendMessageWithKeyboard(chatID, limitReachedText, b.returnKeyboard)
	}

	var reply string

	switch {
	case errors.Is(err, errFetchFailed):
		reply = fetchFailedText
	case errors.Is(err, errSummarizeFailed):
		reply = upstreamText
	default:
		reply = "❌ Failed\\."
	}

	errs := []error{fmt.Errorf("summarize article: %w", err)}

	if sendErr := b.sendMessageWithKeyboard(chatID, reply, b.returnKeyboard); sendErr != nil {
		errs = append(errs, fmt.Errorf("send message with keyboard: %w", sendErr))
	}

	return errors.Join(errs...)
}

func firstURL(text string) string {
	urls := xurls.Strict().FindAllString(text, 1)
	if len(urls) == 0 {
		return ""
	}

	return strings.TrimSpace(urls[0])
}
