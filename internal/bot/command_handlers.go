package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tldrbot/internal/database"
	"tldrbot/internal/markdown"
)

const welcomeText = `🧠 *Welcome to TLDR bot\!*

Send me an article URL and I will:

– Fetch the page and extract its text
– Pull out the key ideas as bullet points
– Condense them into a one\-paragraph summary

Each summary counts toward a daily per\-user quota\.
Check what's left with /usage\.`

func (b *Bot) handleStartCommand(chatID int64) error {
	return b.sendMessageWithKeyboard(chatID, welcomeText, b.menuKeyboard)
}

func (b *Bot) handleMenuCommand(chatID int64) error {
	return b.sendMessageWithKeyboard(chatID, "❔ *Choose an option:*", b.menuKeyboard)
}

func (b *Bot) handleUsageCommand(ctx context.Context, chatID int64, userID int64) error {
	day := database.DayKey(time.Now())

	count, err := b.ledger.CurrentCount(ctx, userID, day)
	if err != nil {
		errs := []error{fmt.Errorf("get current count: %w", err)}

		if sendErr := b.sendMessageWithKeyboard(chatID, "❌ Failed\\.", b.returnKeyboard); sendErr != nil {
			errs = append(errs, fmt.Errorf("send message with keyboard: %w", sendErr))
		}

		return errors.Join(errs...)
	}

	remaining := max(b.dailyCap-count, 0)

	message := fmt.Sprintf(
		"📊 *Usage for %s \\(UTC\\)*\n\nSummaries used: %d of %d\nRemaining: %d\n\nThe quota resets at midnight UTC\\.",
		markdown.EscapeV2(day),
		count,
		b.dailyCap,
		remaining,
	)

	return b.sendMessageWithKeyboard(chatID, message, b.returnKeyboard)
}
