// Package notify pushes booking events to the facility admins over
// Telegram. Notification failures are logged and never propagated to
// the request that triggered them.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
)

// Notifier receives booking lifecycle events.
type Notifier interface {
	BookingCreated(reference, groundName, date, timeRange string, total float64)
	BookingStatusChanged(reference, oldStatus, newStatus string)
}

// NewNotifier returns a Telegram-backed notifier when a bot token is
// configured, otherwise a no-op one.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.Telegram.BotToken == "" || cfg.Telegram.AdminChatID == 0 {
		config.Logger.Info("telegram notifications disabled, no bot token configured")
		return noopNotifier{}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		config.Logger.Error("failed to initialize telegram bot, notifications disabled", zap.Error(err))
		return noopNotifier{}
	}

	return &telegramNotifier{bot: bot, chatID: cfg.Telegram.AdminChatID}
}

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func (n *telegramNotifier) BookingCreated(reference, groundName, date, timeRange string, total float64) {
	text := fmt.Sprintf("📅 New booking %s\n%s on %s, %s\nTotal: %.2f", reference, groundName, date, timeRange, total)
	n.send(text)
}

func (n *telegramNotifier) BookingStatusChanged(reference, oldStatus, newStatus string) {
	text := fmt.Sprintf("🔄 Booking %s: %s → %s", reference, oldStatus, newStatus)
	n.send(text)
}

func (n *telegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		config.Logger.Error("failed to send telegram notification", zap.Error(err))
	}
}

type noopNotifier struct{}

func (noopNotifier) BookingCreated(string, string, string, string, float64) {}
func (noopNotifier) BookingStatusChanged(string, string, string)           {}
